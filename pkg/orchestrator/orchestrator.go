package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/kei-mag/survey-form-test/internal/formconfig/loader"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom form config loader.
func WithLoader(l formconfig.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs on a private copy of the
// loaded config before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the pipeline from form document to rendered
// output. Missing dependencies fall back to the built-in loader and the
// vanilla renderer.
type Orchestrator struct {
	loader          formconfig.Loader
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		themeFallbacks:  defaultThemeFallbacks(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation.
type Request struct {
	// Config bypasses loading when the caller already holds a validated
	// FormConfig. It is cloned before any transformer sees it.
	Config *formconfig.FormConfig

	// Source identifies the document to load. Optional when Config is set.
	Source formconfig.Source

	// Path is used with ResolvePath when neither Config nor Source is set.
	Path formconfig.PathOptions

	// Renderer names the renderer to use. Empty selects the configured
	// default.
	Renderer string

	// ThemeName and ThemeVariant are handed to the theme selector, when one
	// is configured and RenderOptions.Theme is unset. Empty values select the
	// selector's defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions are passed through to the renderer.
	RenderOptions render.RenderOptions
}

// Generate loads (or reuses) the form config, applies the transformer, and
// renders it with the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	form, err := o.Config(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	themeCfg, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}
	options.Theme = themeCfg

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Config runs the load and transform stages only. Load errors are wrapped
// so the formconfig typed errors stay reachable through errors.Is/As.
func (o *Orchestrator) Config(ctx context.Context, req Request) (formconfig.FormConfig, error) {
	if ctx == nil {
		return formconfig.FormConfig{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return formconfig.FormConfig{}, err
	}
	if err := o.initialiseErr; err != nil {
		return formconfig.FormConfig{}, err
	}

	form, err := o.resolveConfig(ctx, req)
	if err != nil {
		return formconfig.FormConfig{}, err
	}
	if err := o.applyTransformer(ctx, &form); err != nil {
		return formconfig.FormConfig{}, err
	}
	return form, nil
}

func (o *Orchestrator) resolveConfig(ctx context.Context, req Request) (formconfig.FormConfig, error) {
	if req.Config != nil {
		return req.Config.Clone(), nil
	}

	src := req.Source
	if src == nil {
		path, err := formconfig.ResolvePath(req.Path)
		if err != nil {
			return formconfig.FormConfig{}, fmt.Errorf("orchestrator: %w", err)
		}
		src = formconfig.SourceFromFile(path)
	}

	if o.loader == nil {
		return formconfig.FormConfig{}, errors.New("orchestrator: loader is nil")
	}
	form, err := o.loader.Load(ctx, src)
	if err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("orchestrator: load form config: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Resolve("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *formconfig.FormConfig) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form config: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New(formconfig.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
