package server

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

const (
	defaultRoutePath   = "/"
	defaultAssetsPath  = "/assets/"
	defaultLocaleParam = "lang"
)

// GuardFunc runs before the form is loaded. Returning an HTTPError selects
// the response status; any other error yields 403.
type GuardFunc func(r *http.Request) error

// Options configures the page handler.
type Options struct {
	RoutePath   string
	AssetsPath  string
	LocaleParam string
	Guard       GuardFunc

	// Path controls which form document is loaded per request.
	Path formconfig.PathOptions
	// Renderer names the registry entry used for the page.
	Renderer string
	// RenderOptions is the template for every request. Locale may be
	// replaced per request through LocaleParam.
	RenderOptions render.RenderOptions

	Orchestrator *orchestrator.Orchestrator
	Logger       logrus.FieldLogger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   defaultRoutePath,
		AssetsPath:  defaultAssetsPath,
		LocaleParam: defaultLocaleParam,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.AssetsPath == "" {
		opts.AssetsPath = defaultAssetsPath
	}
	if opts.Orchestrator == nil {
		opts.Orchestrator = orchestrator.New()
	}
	if opts.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opts.Logger = logger
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithAssetsPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AssetsPath = path
	}
}

// WithLocaleParam names the query parameter that overrides the locale. An
// empty name disables the override.
func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithPathOptions(path formconfig.PathOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Path = path
	}
}

// WithConfigPath pins the form document instead of resolving
// FORM_CONFIG_PATH per request.
func WithConfigPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Path.Explicit = path
	}
}

func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = name
	}
}

func WithRenderOptions(options render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RenderOptions = options
	}
}

func WithOrchestrator(orch *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Orchestrator = orch
	}
}

func WithLogger(logger logrus.FieldLogger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
