package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/slabforge/tablecheck/internal/domain"
)

func TestConstraintsCmdEmptyInput(t *testing.T) {
	out, err := execute(t, "{}", "constraints", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fc domain.FieldConstraints
	if jerr := json.Unmarshal([]byte(out), &fc); jerr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jerr, out)
	}
	if got := fc[domain.FieldThickness].Min; got != 6 {
		t.Errorf("thickness min = %g, want the production floor 6", got)
	}
}

func TestConstraintsCmdHumanOutput(t *testing.T) {
	out, err := execute(t, `{"material": "granite"}`, "constraints")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, domain.FieldThickness) {
		t.Errorf("output should list the thickness field, got: %s", out)
	}
	if !strings.Contains(out, "18") {
		t.Errorf("output should show the granite minimum, got: %s", out)
	}
}

func TestConstraintsCmdMalformedInput(t *testing.T) {
	_, err := execute(t, "{", "constraints")
	if err == nil {
		t.Fatal("expected an error")
	}
}
