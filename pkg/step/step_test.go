package step_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/benchforge/stepgen/pkg/step"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		step    step.Step
		wantErr bool
	}{
		{
			name: "valid step",
			step: step.Step{
				Actions: []step.Action{step.ActionSet, step.ActionGet},
				Parameters: map[string]step.Param{
					step.ParamVoltage: step.Target(3.3),
				},
			},
		},
		{
			name:    "no actions",
			step:    step.Step{},
			wantErr: true,
		},
		{
			name: "unknown action",
			step: step.Step{
				Actions: []step.Action{step.Action("calibrate")},
			},
			wantErr: true,
		},
		{
			name: "empty parameter name",
			step: step.Step{
				Actions:    []step.Action{step.ActionSet},
				Parameters: map[string]step.Param{" ": step.Target(1)},
			},
			wantErr: true,
		},
		{
			name: "empty address",
			step: step.Step{
				Actions:   []step.Action{step.ActionSet},
				Addresses: []step.Address{{}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestOrderedActions(t *testing.T) {
	st := step.Step{
		Actions: []step.Action{
			step.ActionShutdown,
			step.ActionGet,
			step.ActionSet,
			step.ActionSet,
			step.ActionInitialize,
		},
	}

	want := []step.Action{
		step.ActionInitialize,
		step.ActionSet,
		step.ActionGet,
		step.ActionShutdown,
	}
	if diff := cmp.Diff(want, st.OrderedActions()); diff != "" {
		t.Errorf("ordered actions mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimaryAction(t *testing.T) {
	st := step.Step{Actions: []step.Action{step.ActionVerify, step.ActionSet}}
	if got := st.PrimaryAction(); got != step.ActionSet {
		t.Errorf("expected primary action %q, got %q", step.ActionSet, got)
	}

	var empty step.Step
	if got := empty.PrimaryAction(); got != step.Action("") {
		t.Errorf("expected empty primary action, got %q", got)
	}
}

func TestOrderedParameters(t *testing.T) {
	st := step.Step{
		Parameters: map[string]step.Param{
			"reg_value_2":     step.Target(5),
			step.ParamCurrent: step.NoTarget(),
			step.ParamVoltage: step.Target(3.3),
			"alpha":           step.Target(1),
		},
	}

	want := []string{step.ParamVoltage, step.ParamCurrent, "alpha", "reg_value_2"}
	if diff := cmp.Diff(want, st.OrderedParameters()); diff != "" {
		t.Errorf("ordered parameters mismatch (-want +got):\n%s", diff)
	}
}

func TestHasEquipmentIgnoresCase(t *testing.T) {
	st := step.Step{Equipment: []string{"Keysight"}}
	if !st.HasEquipment("keysight") {
		t.Error("expected case-insensitive equipment match")
	}
	if st.HasEquipment("oscilloscope") {
		t.Error("unexpected equipment match")
	}
}

func TestParamJSONRoundTrip(t *testing.T) {
	in := map[string]step.Param{
		step.ParamVoltage: step.Target(3.3),
		step.ParamCurrent: step.NoTarget(),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal parameters: %v", err)
	}
	if want := `{"current":null,"voltage":3.3}`; string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	var out map[string]step.Param
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal parameters: %v", err)
	}

	if v, ok := out[step.ParamVoltage].Value(); !ok || v != 3.3 {
		t.Errorf("expected voltage target 3.3, got %v (present=%v)", v, ok)
	}
	if out[step.ParamCurrent].HasValue() {
		t.Error("expected current to stay targetless")
	}
}

func TestAddressLiterals(t *testing.T) {
	tests := []struct {
		name        string
		addr        step.Address
		wantLiteral string
		wantNumeric bool
		wantJSON    string
	}{
		{
			name:        "decimal",
			addr:        step.NumericAddress(10),
			wantLiteral: "10",
			wantNumeric: true,
			wantJSON:    `10`,
		},
		{
			name:        "hexadecimal keeps its base",
			addr:        step.ParseAddress("0x1F"),
			wantLiteral: "0x1F",
			wantNumeric: true,
			wantJSON:    `"0x1F"`,
		},
		{
			name:        "symbolic",
			addr:        step.ParseAddress("STATUS_REG"),
			wantLiteral: "STATUS_REG",
			wantNumeric: false,
			wantJSON:    `"STATUS_REG"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.String(); got != tt.wantLiteral {
				t.Errorf("expected literal %q, got %q", tt.wantLiteral, got)
			}
			if got := tt.addr.IsNumeric(); got != tt.wantNumeric {
				t.Errorf("expected numeric=%v, got %v", tt.wantNumeric, got)
			}
			data, err := json.Marshal(tt.addr)
			if err != nil {
				t.Fatalf("marshal address: %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("expected JSON %s, got %s", tt.wantJSON, data)
			}
		})
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	var addrs []step.Address
	if err := json.Unmarshal([]byte(`[10, "0x1F", "STATUS_REG"]`), &addrs); err != nil {
		t.Fatalf("unmarshal addresses: %v", err)
	}

	want := []string{"10", "0x1F", "STATUS_REG"}
	got := make([]string, len(addrs))
	for i, a := range addrs {
		got[i] = a.String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("address literals mismatch (-want +got):\n%s", diff)
	}
}

func TestStepYAMLDecode(t *testing.T) {
	doc := `
original_text: Set the voltage to 3.3V and measure the current.
timestamp: 2025-05-02 15:43:50
actions: [set, get]
equipment: [keysight]
parameters:
  voltage: 3.3
  current:
addresses: [10, 0x1F]
`

	var st step.Step
	if err := yaml.Unmarshal([]byte(doc), &st); err != nil {
		t.Fatalf("decode step: %v", err)
	}

	if err := st.Validate(); err != nil {
		t.Fatalf("decoded step failed validation: %v", err)
	}
	if got := st.FormattedTimestamp(); got != "2025-05-02 15:43:50" {
		t.Errorf("expected formatted timestamp 2025-05-02 15:43:50, got %s", got)
	}
	if v, ok := st.Parameters[step.ParamVoltage].Value(); !ok || v != 3.3 {
		t.Errorf("expected voltage target 3.3, got %v (present=%v)", v, ok)
	}
	if st.Parameters[step.ParamCurrent].HasValue() {
		t.Error("expected null current to decode as targetless")
	}
	if got := st.Addresses[1].String(); got != "0x1F" {
		t.Errorf("expected hex literal preserved, got %s", got)
	}
}
