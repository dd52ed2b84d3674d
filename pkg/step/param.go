package step

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Recognized parameter names. Anything outside this vocabulary is treated as
// a pass-through numeric parameter (for example reg_value_2 supplying the
// value written to the second register in the address list).
const (
	ParamVoltage    = "voltage"
	ParamCurrent    = "current"
	ParamFrequency  = "frequency"
	ParamResistance = "resistance"
	ParamPower      = "power"
	ParamValue      = "value"
)

// canonicalParams fixes the emission order of the recognized vocabulary so
// generated artifacts stay byte-stable. Unrecognized keys sort after these.
var canonicalParams = []string{
	ParamVoltage,
	ParamCurrent,
	ParamFrequency,
	ParamResistance,
	ParamPower,
	ParamValue,
}

// Param is an optional numeric target. A parameter may be present on a step
// without carrying a value ("measure the current" names current but sets no
// target); such entries trigger measurement sections but never configure,
// verify, or config-file entries.
type Param struct {
	value  float64
	hasVal bool
}

// Target returns a parameter carrying an explicit numeric target.
func Target(v float64) Param {
	return Param{value: v, hasVal: true}
}

// NoTarget returns a parameter that is relevant to the step but has no value.
func NoTarget() Param {
	return Param{}
}

// Value returns the target value and whether one was set.
func (p Param) Value() (float64, bool) {
	return p.value, p.hasVal
}

// HasValue reports whether the parameter carries an explicit target.
func (p Param) HasValue() bool {
	return p.hasVal
}

// MarshalJSON encodes the target as a number, or null when absent, matching
// the upstream parser's record format.
func (p Param) MarshalJSON() ([]byte, error) {
	if !p.hasVal {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(p.value, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts a number or null.
func (p *Param) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*p = NoTarget()
		return nil
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return fmt.Errorf("step: parameter value %s: %w", trimmed, err)
	}
	*p = Target(v)
	return nil
}

// UnmarshalYAML accepts a number or an empty/null scalar.
func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == "" {
		*p = NoTarget()
		return nil
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("step: parameter value %q: %w", node.Value, err)
	}
	*p = Target(v)
	return nil
}
