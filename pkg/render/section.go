package render

import "github.com/benchforge/stepgen/pkg/step"

// Section describes one named block of a template family: an inclusion
// predicate over the step plus a context builder producing the fully
// resolved values its template consumes. Loop expansion (per-address lines,
// per-parameter statements) happens in the context builder, so template text
// carries structure only.
type Section struct {
	Name    string
	Include func(step.Step) bool
	Context func(step.Step, RenderOptions) map[string]any
}

// ResolvedSection is a section whose predicate held, together with its
// template data.
type ResolvedSection struct {
	Name    string
	Context map[string]any
}

// Resolve evaluates each section's predicate in declaration order and builds
// contexts for the included ones. A step action with no matching section is
// silently ignored; a section whose predicate references absent parameters
// simply resolves to fewer lines.
func Resolve(sections []Section, st step.Step, opts RenderOptions) []ResolvedSection {
	opts = opts.Normalize()

	out := make([]ResolvedSection, 0, len(sections))
	for _, section := range sections {
		if section.Include != nil && !section.Include(st) {
			continue
		}
		var ctx map[string]any
		if section.Context != nil {
			ctx = section.Context(st, opts)
		}
		out = append(out, ResolvedSection{Name: section.Name, Context: ctx})
	}
	return out
}
