// Package config derives the JSON configuration artifact from a step. The
// output mirrors the generated code: same parameter values, same register
// addresses, same declared actions, so the two artifacts never disagree on a
// field they both expose.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/benchforge/stepgen/pkg/step"
)

// StepInfo carries the step's traceability fields.
type StepInfo struct {
	Description   string `json:"description"`
	Timestamp     string `json:"timestamp"`
	PrimaryAction string `json:"primary_action"`
}

// Parameter is one configured target with its verification tolerance.
type Parameter struct {
	Value     float64 `json:"value"`
	Tolerance float64 `json:"tolerance"`
}

// RegisterOperation describes one register access at its 1-based list
// position. Value is present for writes, ExpectedValue when the step
// verifies.
type RegisterOperation struct {
	Address       step.Address `json:"address"`
	Position      int          `json:"position"`
	Operation     string       `json:"operation"`
	Value         *float64     `json:"value,omitempty"`
	ExpectedValue *float64     `json:"expected_value,omitempty"`
}

// Verification reports whether the step verifies results and with which
// per-parameter tolerances.
type Verification struct {
	Enabled    bool               `json:"enabled"`
	Tolerances map[string]float64 `json:"tolerances,omitempty"`
}

// Config is the full configuration record. Field order is fixed by the
// struct, and map keys are sorted by encoding/json, so encoding the same
// step always yields byte-identical output.
type Config struct {
	StepInfo           StepInfo             `json:"step_info"`
	Actions            []string             `json:"actions"`
	Equipment          []string             `json:"equipment"`
	Parameters         map[string]Parameter `json:"parameters"`
	Addresses          []step.Address       `json:"addresses"`
	RegisterOperations []RegisterOperation  `json:"register_operations"`
	Verification       Verification         `json:"verification"`
}

// Encode serializes the config as indented JSON with a trailing newline.
func (c Config) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return append(data, '\n'), nil
}
