// Package orchestrator wires the step → template selection → section
// resolution → code rendering pipeline together with the config synthesizer,
// providing dependency-injection friendly helpers for consumers that prefer
// a single entry point. Every call is independent and side-effect free;
// hosts may process steps concurrently.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/benchforge/stepgen/pkg/config"
	"github.com/benchforge/stepgen/pkg/render"
	"github.com/benchforge/stepgen/pkg/renderers/generic"
	"github.com/benchforge/stepgen/pkg/renderers/keysight"
	"github.com/benchforge/stepgen/pkg/renderers/register"
	"github.com/benchforge/stepgen/pkg/step"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a template family registry. The caller is responsible
// for registration order: most specific first, catch-all last.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithSynthesizer injects a custom config synthesizer.
func WithSynthesizer(synth *config.Synthesizer) Option {
	return func(o *Orchestrator) {
		o.synth = synth
	}
}

// WithDefaultRenderer forces a family by name for requests that omit an
// explicit Renderer, bypassing predicate selection.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator coordinates the full pipeline from step record to the pair of
// synchronized artifacts. Missing dependencies are initialised with the
// built-in implementations so callers can start with a single constructor
// call.
type Orchestrator struct {
	registry        *render.Registry
	synth           *config.Synthesizer
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to synthesize one step.
type Request struct {
	// Step is the normalized record produced by the upstream parser.
	Step step.Step

	// Renderer optionally names a template family, overriding predicate
	// selection. Empty means select by specificity.
	Renderer string

	// RenderOptions carries the constants baked into the generated code
	// (poll interval/timeout, verify tolerance). Zero value means defaults.
	RenderOptions render.RenderOptions
}

// Result is the pair of artifacts synthesized from one step.
type Result struct {
	// RendererName identifies the template family that produced the code.
	RendererName string

	// Code is the generated source artifact.
	Code []byte

	// Config is the structured configuration record.
	Config config.Config

	// ConfigJSON is the deterministic JSON encoding of Config.
	ConfigJSON []byte
}

// Generate executes the selection → resolution → render sequence and derives
// the matching configuration from the same step.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	if err := req.Step.Validate(); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req)
	if err != nil {
		return Result{}, err
	}

	code, err := renderer.Render(ctx, req.Step, req.RenderOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render code: %w", err)
	}

	cfg, err := o.synth.Synthesize(req.Step)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: synthesize config: %w", err)
	}
	encoded, err := cfg.Encode()
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: encode config: %w", err)
	}

	return Result{
		RendererName: renderer.Name(),
		Code:         code,
		Config:       cfg,
		ConfigJSON:   encoded,
	}, nil
}

func (o *Orchestrator) rendererFor(req Request) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	if name != "" {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return renderer, nil
	}

	renderer, err := o.registry.Select(req.Step)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select template: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
		} else {
			o.registry = registry
		}
	}
	if o.synth == nil {
		o.synth = config.New()
	}

	o.defaultsApplied = true
}

// DefaultRegistry assembles the built-in template families in specificity
// order: register-only, equipment-specific, then the generic catch-all.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	registerRenderer, err := register.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: register family: %w", err)
	}
	keysightRenderer, err := keysight.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: keysight family: %w", err)
	}
	genericRenderer, err := generic.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: generic family: %w", err)
	}

	if err := registry.Register(register.Matches, registerRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(keysight.Matches, keysightRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(generic.Matches, genericRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}
