// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/fieldgate/fieldgate/lib/feature"
	"github.com/fieldgate/fieldgate/lib/sanitize"
	"github.com/fieldgate/fieldgate/lib/whitelist"
)

// FeatureDef declares one feature: its identifier, the feature that
// bypasses its ownership check (if any), and its input/output field
// whitelists. Field order within Input and Output is semantic —
// projection follows it and the fingerprint covers it.
type FeatureDef struct {
	// Name is the feature identifier, e.g. "update:user".
	Name string `yaml:"name" json:"name" cbor:"1,keyasint"`

	// Others names the override feature whose holders may exercise
	// this feature against resources they do not own. Must reference
	// another declared feature. Empty for features without an
	// ownership bypass.
	Others string `yaml:"others,omitempty" json:"others,omitempty" cbor:"2,keyasint,omitempty"`

	// Input is the ordered list of payload fields this feature may
	// set. Empty for output-only features.
	Input []string `yaml:"input,omitempty" json:"input,omitempty" cbor:"3,keyasint,omitempty"`

	// Output is the ordered list of representation fields this
	// feature may expose. Empty for input-only features.
	Output []string `yaml:"output,omitempty" json:"output,omitempty" cbor:"4,keyasint,omitempty"`
}

// Policy is a full policy document: the closed feature vocabulary of
// a deployment with its whitelists and override relation.
type Policy struct {
	// Features declares every feature the deployment recognizes.
	Features []FeatureDef `yaml:"features" json:"features" cbor:"1,keyasint"`
}

// Load loads the policy from the file named by the FIELDGATE_POLICY
// environment variable. Fails if the variable is unset — callers that
// want a fallback use Default explicitly.
func Load() (*Policy, error) {
	path := os.Getenv("FIELDGATE_POLICY")
	if path == "" {
		return nil, fmt.Errorf("FIELDGATE_POLICY environment variable not set; " +
			"set it to the path of a policy file, or use the --policy flag")
	}
	return LoadFile(path)
}

// LoadFile loads and validates a policy document from a specific
// path. The extension selects the format: .yaml/.yml for YAML,
// .json/.jsonc for JSON extended with comments and trailing commas.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Policy
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%s: parsing policy: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
			return nil, fmt.Errorf("%s: parsing policy: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported policy format %q (want .yaml, .yml, .json, or .jsonc)", path, filepath.Ext(path))
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the document for structural errors. All problems
// are reported at once.
func (p *Policy) Validate() error {
	var errs []error

	if len(p.Features) == 0 {
		errs = append(errs, fmt.Errorf("policy declares no features"))
	}

	declared := make(map[string]struct{}, len(p.Features))
	for _, def := range p.Features {
		if def.Name == "" {
			errs = append(errs, fmt.Errorf("feature with empty name"))
			continue
		}
		if _, dup := declared[def.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate feature %q", def.Name))
			continue
		}
		declared[def.Name] = struct{}{}
	}

	for _, def := range p.Features {
		if def.Others != "" {
			if def.Others == def.Name {
				errs = append(errs, fmt.Errorf("feature %q declares itself as its override", def.Name))
			} else if _, ok := declared[def.Others]; !ok {
				errs = append(errs, fmt.Errorf("feature %q: override %q is not a declared feature", def.Name, def.Others))
			}
		}
		errs = append(errs, validateFields(def.Name, "input", def.Input)...)
		errs = append(errs, validateFields(def.Name, "output", def.Output)...)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateFields(featureName, table string, fields []string) []error {
	var errs []error
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if field == "" {
			errs = append(errs, fmt.Errorf("feature %q: empty %s field name", featureName, table))
			continue
		}
		if _, dup := seen[field]; dup {
			errs = append(errs, fmt.Errorf("feature %q: duplicate %s field %q", featureName, table, field))
		}
		seen[field] = struct{}{}
	}
	return errs
}

// Compile builds the immutable artifacts the engine consumes: the
// feature catalog (with the override relation) and the input and
// output whitelist tables.
func (p *Policy) Compile() (*feature.Catalog, *whitelist.Table, *whitelist.Table, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, err
	}

	names := make([]string, 0, len(p.Features))
	overrides := make(map[string]string)
	inputs := make(map[string][]string)
	outputs := make(map[string][]string)
	for _, def := range p.Features {
		names = append(names, def.Name)
		if def.Others != "" {
			overrides[def.Name] = def.Others
		}
		if len(def.Input) > 0 {
			inputs[def.Name] = def.Input
		}
		if len(def.Output) > 0 {
			outputs[def.Name] = def.Output
		}
	}

	catalog, err := feature.NewCatalog(names, overrides)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("compiling catalog: %w", err)
	}
	input, err := whitelist.NewTable(inputs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("compiling input whitelist: %w", err)
	}
	output, err := whitelist.NewTable(outputs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("compiling output whitelist: %w", err)
	}
	return catalog, input, output, nil
}

// Engine compiles the policy and returns a ready sanitization engine.
func (p *Policy) Engine() (*sanitize.Engine, error) {
	catalog, input, output, err := p.Compile()
	if err != nil {
		return nil, err
	}
	return sanitize.NewEngine(catalog, input, output), nil
}

// canonical returns a copy of the policy in canonical form: features
// sorted by name. Declaration order in the source document carries no
// meaning, so canonicalization removes it before encoding; field
// order inside a feature is meaningful and preserved.
func (p *Policy) canonical() *Policy {
	features := make([]FeatureDef, len(p.Features))
	copy(features, p.Features)
	sort.Slice(features, func(i, j int) bool {
		return features[i].Name < features[j].Name
	})
	return &Policy{Features: features}
}
