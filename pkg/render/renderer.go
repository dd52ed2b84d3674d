package render

import (
	"context"

	"github.com/benchforge/stepgen/pkg/step"
)

// Renderer converts a step into one self-contained code artifact. Each
// template family (generic, equipment-specific, register-only) implements
// this interface.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, st step.Step, options RenderOptions) ([]byte, error)
}
