// Package keysight implements the equipment-specific template family for the
// Keysight instrument category. It carries dedicated setup, configure, and
// measure routines and omits the runtime equipment branch the generic family
// needs, so it is preferred over generic whenever the category is present.
package keysight

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/benchforge/stepgen/pkg/render"
	rendertemplate "github.com/benchforge/stepgen/pkg/render/template"
	"github.com/benchforge/stepgen/pkg/render/template/pongo"
	"github.com/benchforge/stepgen/pkg/step"
)

// Category is the equipment tag this family recognizes.
const Category = "keysight"

// Matches is the family's applicability predicate: the step names the
// Keysight category.
func Matches(st step.Step) bool {
	return st.HasEquipment(Category)
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.Renderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits the Keysight template family.
type Renderer struct {
	templates rendertemplate.Renderer
}

// New constructs the Keysight renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("keysight renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "keysight"
}

func (r *Renderer) ContentType() string {
	return "text/x-python; charset=utf-8"
}

// Render resolves the section table against the step and expands the included
// sections into one executable script.
func (r *Renderer) Render(ctx context.Context, st step.Step, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	resolved := render.Resolve(sections, st, options)
	out, err := render.Compose(r.templates, "templates", resolved)
	if err != nil {
		return nil, fmt.Errorf("keysight renderer: %w", err)
	}
	return out, nil
}
