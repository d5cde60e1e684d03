package orchestrator

import (
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
)

// WithThemeSelector resolves Request.ThemeName/ThemeVariant through selector
// and hands the result to renderers as RenderOptions.Theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks sets partials used when the selected theme does not
// override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		o.themeFallbacks = make(map[string]string, len(fallbacks))
		for key, value := range fallbacks {
			o.themeFallbacks[key] = value
		}
	}
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		vanilla.PagePartialKey: vanilla.PageTemplate,
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if req.RenderOptions.Theme != nil {
		return req.RenderOptions.Theme, nil
	}
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfig(selection, o.themeFallbacks), nil
}

func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string),
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
	}
	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	prefix := ""
	files := make(map[string]string)

	if manifest := selection.Manifest; manifest != nil {
		merge(cfg.Partials, manifest.Templates)
		merge(cfg.Tokens, manifest.Tokens)
		prefix = manifest.Assets.Prefix
		merge(files, manifest.Assets.Files)

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			merge(cfg.Partials, variant.Templates)
			merge(cfg.Tokens, variant.Tokens)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
			merge(files, variant.Assets.Files)
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return path.Join(prefix, file)
	}
	return cfg
}

func merge(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
