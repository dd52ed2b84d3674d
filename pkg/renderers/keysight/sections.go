package keysight

import (
	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/step"
)

type setting struct {
	Name    string
	Call    string
	Literal string
}

type measurement struct {
	Key  string
	Call string
}

// setterCalls maps targets onto the Keysight control API. Current maps to the
// limit setter: on this instrument family the supply drives voltage and the
// current value acts as a limit.
var setterCalls = map[string]string{
	step.ParamVoltage:   "set_voltage",
	step.ParamCurrent:   "set_current_limit",
	step.ParamFrequency: "set_frequency",
}

// measureCalls covers the directly measurable parameters. Power is derived
// from a voltage and current reading instead of a dedicated call.
var measureCalls = map[string]string{
	step.ParamVoltage:    "measure_voltage",
	step.ParamCurrent:    "measure_current",
	step.ParamFrequency:  "measure_frequency",
	step.ParamResistance: "measure_resistance",
}

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
			measurePower := false
			for _, name := range render.MeasuredParameters(st) {
				if name == step.ParamPower {
					measurePower = true
					continue
				}
				measures = append(measures, measurement{Key: name, Call: measureCalls[name]})
			}
			return map[string]any{
				"measures":      measures,
				"measure_power": measurePower,
				"reads":         render.RegisterReads(st),
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
			}
		},
	},
}
