// Package register implements the register-only template family: pure
// register read, write, and verify with no instrument control. It applies
// when the step carries addresses but no equipment category.
package register

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

// Matches is the family's applicability predicate: addresses present,
// equipment absent.
func Matches(st step.Step) bool {
	return len(st.Addresses) > 0 && len(st.Equipment) == 0
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

// Renderer emits the register-only template family.
type Renderer struct {
	templates rendertemplate.Renderer
}

// New constructs the register renderer applying any provided options.
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
			return nil, fmt.Errorf("register renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "register"
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
		return nil, fmt.Errorf("register renderer: %w", err)
	}
	return out, nil
}
