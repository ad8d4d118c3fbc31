// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"reflect"
	"testing"
)

func TestMarshal_Deterministic(t *testing.T) {
	// Map iteration order must not leak into the encoding.
	value := map[string]any{"b": 2, "a": 1, "c": 3}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding varies between calls")
		}
	}
}

func TestUnmarshal_DefaultMapType(t *testing.T) {
	encoded, err := Marshal(map[string]any{
		"outer": map[string]any{"inner": "value"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded is %T, want map[string]any", decoded)
	}
	if _, ok := outer["outer"].(map[string]any); !ok {
		t.Fatalf("nested value is %T, want map[string]any", outer["outer"])
	}
}

func TestRoundTrip_KeyasintStruct(t *testing.T) {
	type record struct {
		Name   string   `cbor:"1,keyasint"`
		Fields []string `cbor:"2,keyasint,omitempty"`
	}

	original := record{Name: "update:user", Fields: []string{"username", "email"}}
	encoded, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded record
	if err := Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip: got %+v, want %+v", decoded, original)
	}
}
