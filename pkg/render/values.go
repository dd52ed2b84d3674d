package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benchforge/stepgen/pkg/step"
)

// settableParams are the parameters the equipment collaborator can drive.
// Targets outside this set (resistance, power) are measurable but not
// settable, so configure sections skip them without error.
var settableParams = []string{step.ParamVoltage, step.ParamCurrent, step.ParamFrequency}

// measurableParams are the parameters the equipment collaborator can read
// back. Key presence alone (with or without a target) requests a measurement.
var measurableParams = []string{
	step.ParamVoltage,
	step.ParamCurrent,
	step.ParamFrequency,
	step.ParamResistance,
	step.ParamPower,
}

// PyFloat renders a float as the shortest Python literal that round-trips.
func PyFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// DocstringSafe makes text safe for embedding in a triple-quoted header.
func DocstringSafe(s string) string {
	return strings.ReplaceAll(s, `"""`, `\"\"\"`)
}

// ParamTarget is a parameter carrying an explicit value, resolved to the
// literal form the templates splice into calls.
type ParamTarget struct {
	Name    string
	Value   float64
	Literal string
}

// ParameterTargets returns every parameter with an explicit value, in
// canonical order.
func ParameterTargets(st step.Step) []ParamTarget {
	var out []ParamTarget
	for _, name := range st.OrderedParameters() {
		if v, ok := st.Parameters[name].Value(); ok {
			out = append(out, ParamTarget{Name: name, Value: v, Literal: PyFloat(v)})
		}
	}
	return out
}

// SettableTargets filters ParameterTargets down to parameters the equipment
// collaborator exposes a setter for.
func SettableTargets(st step.Step) []ParamTarget {
	var out []ParamTarget
	for _, target := range ParameterTargets(st) {
		for _, name := range settableParams {
			if target.Name == name {
				out = append(out, target)
				break
			}
		}
	}
	return out
}

// MeasuredParameters returns the measurable parameter keys present on the
// step, in canonical order. A key with no target still requests a
// measurement.
func MeasuredParameters(st step.Step) []string {
	var out []string
	for _, name := range st.OrderedParameters() {
		for _, candidate := range measurableParams {
			if name == candidate {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// RegisterWrite is one write statement: the address literal, the value
// literal, and the 1-based position in the step's address list.
type RegisterWrite struct {
	Position int
	Address  string
	Value    string
}

// RegisterWrites expands the address list into write lines, in list order.
// The written value comes from the positional pass-through parameter
// (reg_value_N), then the shared value parameter, then the literal 0.
func RegisterWrites(st step.Step) []RegisterWrite {
	out := make([]RegisterWrite, 0, len(st.Addresses))
	for i, addr := range st.Addresses {
		position := i + 1
		out = append(out, RegisterWrite{
			Position: position,
			Address:  addr.String(),
			Value:    registerValueLiteral(st, position),
		})
	}
	return out
}

// RegisterRead is one read statement with its 1-based position label.
type RegisterRead struct {
	Position int
	Address  string
}

// RegisterReads expands the address list into read lines, in list order.
func RegisterReads(st step.Step) []RegisterRead {
	out := make([]RegisterRead, 0, len(st.Addresses))
	for i, addr := range st.Addresses {
		out = append(out, RegisterRead{Position: i + 1, Address: addr.String()})
	}
	return out
}

func registerValueLiteral(st step.Step, position int) string {
	if v, ok := st.Parameters[fmt.Sprintf("reg_value_%d", position)].Value(); ok {
		return PyFloat(v)
	}
	if v, ok := st.Parameters[step.ParamValue].Value(); ok {
		return PyFloat(v)
	}
	return "0"
}

// WaitCheck is one polling condition of a generated wait section: re-measure
// the parameter and succeed when it is within an absolute band of the target.
type WaitCheck struct {
	Name   string
	Call   string
	Target string
	Band   string
}

// WaitChecks resolves the parameters a wait section polls. Only voltage and
// current carry defined absolute bands; other targets are not polled.
func WaitChecks(st step.Step) []WaitCheck {
	var out []WaitCheck
	if v, ok := st.Parameters[step.ParamVoltage].Value(); ok {
		out = append(out, WaitCheck{
			Name:   step.ParamVoltage,
			Call:   "measure_voltage",
			Target: PyFloat(v),
			Band:   PyFloat(VoltageWaitBand),
		})
	}
	if v, ok := st.Parameters[step.ParamCurrent].Value(); ok {
		out = append(out, WaitCheck{
			Name:   step.ParamCurrent,
			Call:   "measure_current",
			Target: PyFloat(v),
			Band:   PyFloat(CurrentWaitBand),
		})
	}
	return out
}

// ExpectedValue is one entry of a verify section's expected-value mapping.
type ExpectedValue struct {
	Name      string
	Value     string
	Tolerance string
}

// ExpectedValues builds the verify section's expected-value mapping from
// every parameter with an explicit target, in canonical order.
func ExpectedValues(st step.Step, tolerance float64) []ExpectedValue {
	var out []ExpectedValue
	for _, target := range ParameterTargets(st) {
		out = append(out, ExpectedValue{
			Name:      target.Name,
			Value:     target.Literal,
			Tolerance: PyFloat(tolerance),
		})
	}
	return out
}
