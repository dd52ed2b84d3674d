package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/step"
)

func TestResolveFiltersByPredicate(t *testing.T) {
	sections := []render.Section{
		{Name: "header"},
		{
			Name:    "configure",
			Include: func(st step.Step) bool { return st.Has(step.ActionSet) },
			Context: func(st step.Step, _ render.RenderOptions) map[string]any {
				return map[string]any{"count": len(st.Parameters)}
			},
		},
		{
			Name:    "verify",
			Include: func(st step.Step) bool { return st.Has(step.ActionVerify) },
		},
	}

	st := step.Step{
		Actions: []step.Action{step.ActionSet},
		Parameters: map[string]step.Param{
			step.ParamVoltage: step.Target(3.3),
		},
	}

	resolved := render.Resolve(sections, st, render.RenderOptions{})

	want := []render.ResolvedSection{
		{Name: "header"},
		{Name: "configure", Context: map[string]any{"count": 1}},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Errorf("resolved sections mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNormalizesOptions(t *testing.T) {
	var seen render.RenderOptions
	sections := []render.Section{
		{
			Name: "wait",
			Context: func(_ step.Step, opts render.RenderOptions) map[string]any {
				seen = opts
				return nil
			},
		},
	}

	render.Resolve(sections, step.Step{Actions: []step.Action{step.ActionWait}}, render.RenderOptions{})

	want := render.RenderOptions{
		PollInterval:      render.DefaultPollInterval,
		PollTimeout:       render.DefaultPollTimeout,
		RelativeTolerance: render.DefaultRelativeTolerance,
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("normalized options mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveKeepsExplicitOptions(t *testing.T) {
	var seen render.RenderOptions
	sections := []render.Section{
		{
			Name: "wait",
			Context: func(_ step.Step, opts render.RenderOptions) map[string]any {
				seen = opts
				return nil
			},
		},
	}

	opts := render.RenderOptions{PollInterval: 0.25, PollTimeout: 30, RelativeTolerance: 0.01}
	render.Resolve(sections, step.Step{Actions: []step.Action{step.ActionWait}}, opts)

	if diff := cmp.Diff(opts, seen); diff != "" {
		t.Errorf("explicit options mismatch (-want +got):\n%s", diff)
	}
}
