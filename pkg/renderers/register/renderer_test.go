package register_test

import (
	"strings"
	"testing"

	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/renderers/register"
	"github.com/benchforge/stepgen/pkg/step"
	"github.com/benchforge/stepgen/pkg/testsupport"
)

func renderStep(t *testing.T, st step.Step) string {
	t.Helper()

	renderer, err := register.New()
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), st, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestMatches(t *testing.T) {
	withAddresses := step.Step{Addresses: []step.Address{step.NumericAddress(10)}}
	if !register.Matches(withAddresses) {
		t.Error("expected match on an address-only step")
	}

	withEquipment := withAddresses
	withEquipment.Equipment = []string{"keysight"}
	if register.Matches(withEquipment) {
		t.Error("equipment steps belong to another family")
	}

	if register.Matches(step.Step{}) {
		t.Error("unexpected match without addresses")
	}
}

func TestRenderSharedWriteValue(t *testing.T) {
	code := renderStep(t, testsupport.RegisterStep())

	wantFragments := []string{
		"Write the value 7 to register 10 and register 12.",
		"from register import register_ops",
		"def write_registers():",
		"register_ops.write_register(10, 7)  # register 1",
		"register_ops.write_register(12, 7)  # register 2",
		"def run_step():",
		"write_registers()",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated code missing %q\n%s", fragment, code)
		}
	}

	first := strings.Index(code, "write_register(10, 7)")
	second := strings.Index(code, "write_register(12, 7)")
	if first == -1 || second == -1 || first > second {
		t.Errorf("writes must follow the address list order:\n%s", code)
	}

	for _, fragment := range []string{
		"def read_registers",
		"def verify_registers",
		"keysight",
		"import time",
	} {
		if strings.Contains(code, fragment) {
			t.Errorf("generated code unexpectedly contains %q", fragment)
		}
	}
}

func TestRenderPositionalValues(t *testing.T) {
	st := step.Step{
		Timestamp: testsupport.Timestamp(),
		Actions:   []step.Action{step.ActionSet},
		Parameters: map[string]step.Param{
			"reg_value_1":   step.Target(5),
			step.ParamValue: step.Target(7),
		},
		Addresses: []step.Address{
			step.NumericAddress(10),
			step.NumericAddress(12),
		},
	}

	code := renderStep(t, st)

	if !strings.Contains(code, "register_ops.write_register(10, 5)") {
		t.Errorf("expected positional value for register 1 in:\n%s", code)
	}
	if !strings.Contains(code, "register_ops.write_register(12, 7)") {
		t.Errorf("expected shared-value fallback for register 2 in:\n%s", code)
	}
}

func TestRenderReadAndVerify(t *testing.T) {
	st := testsupport.RegisterStep()
	st.Actions = []step.Action{step.ActionSet, step.ActionGet, step.ActionVerify}

	code := renderStep(t, st)

	wantFragments := []string{
		"def read_registers():",
		`results["reg_1"] = register_ops.read_register(10)`,
		`results["reg_2"] = register_ops.read_register(12)`,
		"def verify_registers():",
		"value = register_ops.read_register(10)  # register 1",
		"passed = value == 7",
		"write_registers()",
		"read_registers()",
		"verify_registers()",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated code missing %q\n%s", fragment, code)
		}
	}

	// Register verification is exact equality, never a tolerance band.
	if strings.Contains(code, "tolerance") {
		t.Errorf("register verification must compare exactly:\n%s", code)
	}
}

func TestRenderHexAddressesKeepTheirBase(t *testing.T) {
	st := step.Step{
		Timestamp:  testsupport.Timestamp(),
		Actions:    []step.Action{step.ActionGet},
		Parameters: map[string]step.Param{},
		Addresses:  []step.Address{step.ParseAddress("0x1F")},
	}

	code := renderStep(t, st)
	if !strings.Contains(code, "register_ops.read_register(0x1F)") {
		t.Errorf("expected hex literal preserved in:\n%s", code)
	}
}
