package generic

import (
	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/step"
)

// recognizedEquipment is the category the generic family's internal branch
// switches on: when present it drives the real instrument module, otherwise
// the generated code carries a bare no-op equipment handle.
const recognizedEquipment = "keysight"

// setting is one configure statement: the collaborator call plus the literal
// bound into it.
type setting struct {
	Name    string
	Call    string
	Literal string
}

// measurement is one measure statement keyed into the results dict.
type measurement struct {
	Key  string
	Call string
}

var setterCalls = map[string]string{
	step.ParamVoltage:   "set_voltage",
	step.ParamCurrent:   "set_current",
	step.ParamFrequency: "set_frequency",
}

var measureCalls = map[string]string{
	step.ParamVoltage:    "measure_voltage",
	step.ParamCurrent:    "measure_current",
	step.ParamFrequency:  "measure_frequency",
	step.ParamResistance: "measure_resistance",
	step.ParamPower:      "measure_power",
}

func hasRecognizedEquipment(st step.Step) bool {
	return st.HasEquipment(recognizedEquipment)
}

// sections is the generic family's ordered section table. Emission order
// matches the fixed pipeline order so generated routines appear in the order
// the orchestration routine calls them.
var sections = []render.Section{
	{
		Name: "header",
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{
				"original_text": render.DocstringSafe(st.OriginalText),
				"timestamp":     st.FormattedTimestamp(),
				"has_wait":      st.Has(step.ActionWait),
			}
		},
	},
	{
		Name:    "initialize",
		Include: func(st step.Step) bool { return st.Has(step.ActionInitialize) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{"has_keysight": hasRecognizedEquipment(st)}
		},
	},
	{
		Name:    "configure",
		Include: func(st step.Step) bool { return st.Has(step.ActionSet) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			var settings []setting
			for _, target := range render.SettableTargets(st) {
				settings = append(settings, setting{
					Name:    target.Name,
					Call:    setterCalls[target.Name],
					Literal: target.Literal,
				})
			}
			return map[string]any{
				"settings": settings,
				"writes":   render.RegisterWrites(st),
			}
		},
	},
	{
		Name:    "wait",
		Include: func(st step.Step) bool { return st.Has(step.ActionWait) },
		Context: func(st step.Step, opts render.RenderOptions) map[string]any {
			return map[string]any{
				"checks":   render.WaitChecks(st),
				"interval": opts.PollInterval,
				"timeout":  opts.PollTimeout,
			}
		},
	},
	{
		Name:    "measure",
		Include: func(st step.Step) bool { return st.Has(step.ActionGet) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			var measures []measurement
			for _, name := range render.MeasuredParameters(st) {
				measures = append(measures, measurement{Key: name, Call: measureCalls[name]})
			}
			return map[string]any{
				"measures": measures,
				"reads":    render.RegisterReads(st),
			}
		},
	},
	{
		Name:    "verify",
		Include: func(st step.Step) bool { return st.Has(step.ActionVerify) },
		Context: func(st step.Step, opts render.RenderOptions) map[string]any {
			return map[string]any{
				"expected": render.ExpectedValues(st, opts.RelativeTolerance),
			}
		},
	},
	{
		Name: "shutdown",
		Include: func(st step.Step) bool {
			return st.HasAny(step.ActionDisconnect, step.ActionShutdown)
		},
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{"has_keysight": hasRecognizedEquipment(st)}
		},
	},
	{
		Name: "main",
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{
				"has_initialize": st.Has(step.ActionInitialize),
				"has_set":        st.Has(step.ActionSet),
				"has_wait":       st.Has(step.ActionWait),
				"has_get":        st.Has(step.ActionGet),
				"has_verify":     st.Has(step.ActionVerify),
				"has_shutdown":   st.HasAny(step.ActionDisconnect, step.ActionShutdown),
				"has_keysight":   hasRecognizedEquipment(st),
			}
		},
	},
}
