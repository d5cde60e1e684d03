package render

import (
	"errors"
	"strings"
)

// DefaultLocale is used when RenderOptions.Locale is empty or unknown.
const DefaultLocale = "ja"

// Message keys for text the renderers generate themselves. Item titles,
// descriptions, and choices come from the document and are never translated.
const (
	MessageSelectPlaceholder = "pulldown.placeholder"
	MessageAllowedExtensions = "file.allowedExtensions"
	MessageMaxFileSize       = "file.maxFileSize"
	MessageHintSeparator     = "file.hintSeparator"
)

// ErrMissingTranslator is passed to OnMissing when no translator is set and
// the catalogue lacks the key.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// resolved. The returned string is used verbatim.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, _ []any, _ error) string {
	return key
}

// Catalog maps locale -> key -> message.
type Catalog map[string]map[string]string

// Translate implements Translator. Regional locales fall back to their base
// language ("ja-JP" -> "ja").
func (c Catalog) Translate(locale, key string, _ ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		if msg, ok := c[candidate][key]; ok {
			return msg, nil
		}
	}
	return "", errors.New("render: no message for " + key)
}

var builtinCatalog = Catalog{
	"ja": {
		MessageSelectPlaceholder: "選択してください",
		MessageAllowedExtensions: "許可される拡張子: ",
		MessageMaxFileSize:       "最大サイズ: ",
		MessageHintSeparator:     " / ",
	},
	"en": {
		MessageSelectPlaceholder: "Please select",
		MessageAllowedExtensions: "Allowed extensions: ",
		MessageMaxFileSize:       "Maximum size: ",
		MessageHintSeparator:     " / ",
	},
}

// DefaultCatalog returns a copy of the built-in messages.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(builtinCatalog))
	for locale, messages := range builtinCatalog {
		copied := make(map[string]string, len(messages))
		for k, v := range messages {
			copied[k] = v
		}
		out[locale] = copied
	}
	return out
}

// Messages is the resolved message set a renderer needs.
type Messages struct {
	Locale            string
	SelectPlaceholder string
	AllowedExtensions string
	MaxFileSize       string
	HintSeparator     string
}

// ResolveMessages looks each key up in t first, then the built-in catalogue
// for locale, then DefaultLocale. Keys still missing go through onMissing.
func ResolveMessages(locale string, t Translator, onMissing MissingTranslationHandler) Messages {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	lookup := func(key string) string {
		return translate(locale, key, t, onMissing)
	}
	return Messages{
		Locale:            resolvedLocale(locale, t),
		SelectPlaceholder: lookup(MessageSelectPlaceholder),
		AllowedExtensions: lookup(MessageAllowedExtensions),
		MaxFileSize:       lookup(MessageMaxFileSize),
		HintSeparator:     lookup(MessageHintSeparator),
	}
}

// resolvedLocale reports the locale the messages actually came from, so pages
// never declare a language their text is not in.
func resolvedLocale(locale string, t Translator) string {
	for _, candidate := range localeChain(locale) {
		if _, ok := builtinCatalog[candidate]; ok {
			return locale
		}
	}
	if t != nil {
		if msg, err := t.Translate(locale, MessageSelectPlaceholder); err == nil && msg != "" {
			return locale
		}
	}
	return DefaultLocale
}

func translate(locale, key string, t Translator, onMissing MissingTranslationHandler) string {
	var err error
	if t != nil {
		var msg string
		msg, err = t.Translate(locale, key)
		if err == nil && msg != "" {
			return msg
		}
	}
	for _, candidate := range []string{locale, DefaultLocale} {
		if msg, catalogErr := builtinCatalog.Translate(candidate, key); catalogErr == nil {
			return msg
		}
	}
	if t == nil {
		err = ErrMissingTranslator
	}
	return onMissing(locale, key, nil, err)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return []string{DefaultLocale}
	}
	chain := []string{locale}
	lower := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if lower != locale {
		chain = append(chain, lower)
	}
	if base, _, ok := strings.Cut(lower, "-"); ok && base != "" {
		chain = append(chain, base)
	}
	return chain
}
