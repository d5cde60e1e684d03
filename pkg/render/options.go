package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-call data that renderers use to customise their
// output without touching the loaded FormConfig.
type RenderOptions struct {
	// Locale picks the message catalogue for renderer-generated text such as
	// the pulldown placeholder. Empty means DefaultLocale.
	Locale string
	// Translator overrides the built-in catalogue. Keys it cannot resolve fall
	// back to the catalogue entry for Locale.
	Translator Translator
	// OnMissing is consulted when neither the translator nor the catalogue know
	// a key.
	OnMissing MissingTranslationHandler
	// IDs supplies the per-render identifier prefix. A fresh random scope is
	// used when nil; tests inject a SequenceIDScope.
	IDs IDScope
	// Theme carries resolved go-theme selections (partials, tokens, CSS vars)
	// for renderers that emit full pages.
	Theme *theme.RendererConfig
}

// Messages resolves the fixed renderer messages for these options.
func (o RenderOptions) Messages() Messages {
	return ResolveMessages(o.Locale, o.Translator, o.OnMissing)
}

// IDScopeOrNew returns o.IDs, or a new random scope when it is unset.
func (o RenderOptions) IDScopeOrNew() IDScope {
	if o.IDs != nil {
		return o.IDs
	}
	return NewIDScope()
}
