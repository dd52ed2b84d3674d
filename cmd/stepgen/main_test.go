package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParameters(t *testing.T) {
	params, err := parseParameters("voltage=3.3, current=, resistance")
	if err != nil {
		t.Fatalf("parse parameters: %v", err)
	}

	if v, ok := params["voltage"].Value(); !ok || v != 3.3 {
		t.Errorf("expected voltage target 3.3, got %v (present=%v)", v, ok)
	}
	if params["current"].HasValue() {
		t.Error("expected current to stay targetless")
	}
	if params["resistance"].HasValue() {
		t.Error("expected bare name to stay targetless")
	}

	if _, err := parseParameters("voltage=abc"); err == nil {
		t.Error("expected non-numeric value to fail")
	}
	if _, err := parseParameters("=3.3"); err == nil {
		t.Error("expected missing name to fail")
	}
	if params, err := parseParameters("  "); err != nil || params != nil {
		t.Errorf("expected blank input to parse to nothing, got %v, %v", params, err)
	}
}

func TestParseAddresses(t *testing.T) {
	addrs := parseAddresses("10, 0x1F, STATUS_REG")

	got := make([]string, len(addrs))
	for i, a := range addrs {
		got[i] = a.String()
	}
	if diff := cmp.Diff([]string{"10", "0x1F", "STATUS_REG"}, got); diff != "" {
		t.Errorf("address literals mismatch (-want +got):\n%s", diff)
	}

	if addrs := parseAddresses(""); addrs != nil {
		t.Errorf("expected blank input to parse to nothing, got %v", addrs)
	}
}

func TestLoadSteps(t *testing.T) {
	doc := `
- original_text: Set the voltage to 3.3V.
  timestamp: 2025-05-02 15:43:50
  actions: [set]
  parameters:
    voltage: 3.3
- original_text: Read register 10.
  actions: [get]
  addresses: [10]
`
	path := filepath.Join(t.TempDir(), "steps.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	steps, err := loadSteps(path)
	if err != nil {
		t.Fatalf("load steps: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}

	if got := steps[0].FormattedTimestamp(); got != "2025-05-02 15:43:50" {
		t.Errorf("expected explicit timestamp kept, got %s", got)
	}
	if steps[1].Timestamp.IsZero() {
		t.Error("expected a missing timestamp to be filled in")
	}
	if err := steps[0].Validate(); err != nil {
		t.Errorf("decoded step failed validation: %v", err)
	}

	if _, err := loadSteps(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected missing file to fail")
	}
}
