package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
	rendertemplate "github.com/kei-mag/survey-form-test/pkg/render/template"
	"github.com/kei-mag/survey-form-test/pkg/render/template/pongo"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla/components"
)

// Name is the registry name of this renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	page             bool
	defaultStyles    bool
	stylesheets      []string
	rich             bool
	policy           *bluemonday.Policy
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

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the item-type -> widget registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithPage toggles full-page output. When false Render returns only the
// <form> fragment.
func WithPage(enabled bool) Option {
	return func(cfg *config) {
		cfg.page = enabled
	}
}

// WithDefaultStyles toggles inlining the embedded stylesheet into pages.
func WithDefaultStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.defaultStyles = enabled
	}
}

// WithStylesheet links extra stylesheets from the page head. Hrefs pass
// through the theme's AssetURL resolver when one is set.
func WithStylesheet(hrefs ...string) Option {
	return func(cfg *config) {
		for _, href := range hrefs {
			if href = strings.TrimSpace(href); href != "" {
				cfg.stylesheets = append(cfg.stylesheets, href)
			}
		}
	}
}

// WithRichDescriptions lets descriptions carry inline HTML, sanitised with
// DefaultDescriptionPolicy unless WithDescriptionPolicy says otherwise.
func WithRichDescriptions(enabled bool) Option {
	return func(cfg *config) {
		cfg.rich = enabled
	}
}

// WithDescriptionPolicy sets the bluemonday policy for rich descriptions.
func WithDescriptionPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer emits HTML built from an x/net/html tree. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	registry      *components.Registry
	page          bool
	defaultStyles bool
	stylesheets   []string
	describe      func(string) *html.Node
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		page:          true,
		defaultStyles: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	templates := cfg.templateRenderer
	if templates == nil && cfg.page {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
			pongo.WithFuncs(render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	r := &Renderer{
		templates:     templates,
		registry:      cfg.registry,
		page:          cfg.page,
		defaultStyles: cfg.defaultStyles,
		stylesheets:   append([]string(nil), cfg.stylesheets...),
	}
	if cfg.rich {
		policy := cfg.policy
		if policy == nil {
			policy = DefaultDescriptionPolicy()
		}
		r.describe = richDescription(policy)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Tree builds the <form> node tree without serialising it.
func (r *Renderer) Tree(form formconfig.FormConfig, options render.RenderOptions) *html.Node {
	return BuildForm(form, BuildOptions{
		Registry:    r.registry,
		Messages:    options.Messages(),
		IDs:         options.IDScopeOrNew(),
		Description: r.describe,
	})
}

// Render serialises the form, wrapped in the page template unless the
// renderer was built with WithPage(false).
func (r *Renderer) Render(ctx context.Context, form formconfig.FormConfig, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	var fragment bytes.Buffer
	if err := html.Render(&fragment, r.Tree(form, options)); err != nil {
		return nil, fmt.Errorf("vanilla renderer: serialise form: %w", err)
	}
	if !r.page {
		return fragment.Bytes(), nil
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(pageTemplate(options.Theme), r.pageData(form, options, fragment.String()))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) pageData(form formconfig.FormConfig, options render.RenderOptions, fragment string) map[string]any {
	resolve := assetResolver(options.Theme)

	types := make([]formconfig.ItemType, 0, len(form.Contents))
	for _, item := range form.Contents {
		types = append(types, item.Header().Type)
	}
	var stylesheets []string
	for _, href := range append(append([]string(nil), r.stylesheets...), r.registry.Stylesheets(types)...) {
		stylesheets = append(stylesheets, resolve(href))
	}

	inline := ""
	if r.defaultStyles {
		inline = defaultStylesheet()
	}

	return map[string]any{
		"title":         form.Name,
		"lang":          options.Messages().Locale,
		"form":          fragment,
		"stylesheets":   stylesheets,
		"inline_styles": inline,
		"theme":         themeContext(options.Theme),
	}
}

func pageTemplate(cfg *theme.RendererConfig) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[PagePartialKey]); name != "" {
			return name
		}
	}
	return PageTemplate
}

func assetResolver(cfg *theme.RendererConfig) func(string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return func(s string) string { return s }
	}
	return func(s string) string {
		if resolved := cfg.AssetURL(s); resolved != "" {
			return resolved
		}
		return s
	}
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	tokens := make(map[string]string, len(cfg.Tokens))
	for k, v := range cfg.Tokens {
		tokens[k] = v
	}
	return map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"tokens":   tokens,
		"css_vars": cssVarsStyle(cfg.CSSVars),
	}
}

// cssVarsStyle renders a :root block. Entries that could close the style
// element or the block are dropped.
func cssVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if !strings.HasPrefix(key, "--") || strings.ContainsAny(key+value, "<>{};") {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
