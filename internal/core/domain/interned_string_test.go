package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/deparse/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("@babel/core")
	is2 := domain.NewInternedString("@babel/core")

	if is1 != is2 {
		t.Errorf("Expected interned values to be equal for identical strings")
	}
	if is1.String() != "@babel/core" {
		t.Errorf("Expected String() to return %q, got %q", "@babel/core", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected zero value to render as empty string, got %q", zero.String())
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected an interned empty string not to be the zero value")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type request struct {
		Name domain.InternedString `json:"name"`
	}

	original := request{Name: domain.NewInternedString("lodash")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"name":"lodash"}` {
		t.Errorf("Expected JSON %q, got %q", `{"name":"lodash"}`, string(data))
	}

	var decoded request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Name != original.Name {
		t.Errorf("Expected decoded name %q, got %q", original.Name.String(), decoded.Name.String())
	}
}
