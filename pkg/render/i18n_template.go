package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey is read from map data passed as the locale source.
	LocaleKey string
	// FuncName customises the helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a key is unknown.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns template globals exposing the message catalogue:
//
//	{{ translate(locale, "pulldown.placeholder") }}
//
// localeSrc may be a locale string or a map holding one under LocaleKey.
// Lookups follow the same chain as ResolveMessages.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	name := strings.TrimSpace(cfg.FuncName)
	if name == "" {
		name = "translate"
	}
	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	return map[string]any{
		name: func(localeSrc any, key string) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			locale := resolveLocale(localeSrc, localeKey)
			if locale == "" {
				locale = DefaultLocale
			}
			return translate(locale, key, t, onMissing)
		},
	}
}

func resolveLocale(src any, key string) string {
	switch v := src.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case map[string]string:
		return strings.TrimSpace(v[key])
	case map[string]any:
		if raw, ok := v[key]; ok && raw != nil {
			return strings.TrimSpace(fmt.Sprint(raw))
		}
	}
	return ""
}
