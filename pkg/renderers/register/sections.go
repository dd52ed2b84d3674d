package register

import (
	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/step"
)

// verification is one exact-equality check against the value the step wrote
// (or expected) at that address.
type verification struct {
	Position int
	Address  string
	Expected string
}

func verifications(st step.Step) []verification {
	writes := render.RegisterWrites(st)
	out := make([]verification, 0, len(writes))
	for _, w := range writes {
		out = append(out, verification{
			Position: w.Position,
			Address:  w.Address,
			Expected: w.Value,
		})
	}
	return out
}

// sections is the register family's ordered table. The family defines no
// initialize, wait, or shutdown capability; steps requesting those actions
// have them silently ignored.
var sections = []render.Section{
	{
		Name: "header",
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{
				"original_text": render.DocstringSafe(st.OriginalText),
				"timestamp":     st.FormattedTimestamp(),
			}
		},
	},
	{
		Name:    "write",
		Include: func(st step.Step) bool { return st.Has(step.ActionSet) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{"writes": render.RegisterWrites(st)}
		},
	},
	{
		Name:    "read",
		Include: func(st step.Step) bool { return st.Has(step.ActionGet) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{"reads": render.RegisterReads(st)}
		},
	},
	{
		Name:    "verify",
		Include: func(st step.Step) bool { return st.Has(step.ActionVerify) },
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{"verifications": verifications(st)}
		},
	},
	{
		Name: "main",
		Context: func(st step.Step, _ render.RenderOptions) map[string]any {
			return map[string]any{
				"has_set":    st.Has(step.ActionSet),
				"has_get":    st.Has(step.ActionGet),
				"has_verify": st.Has(step.ActionVerify),
			}
		},
	},
}
