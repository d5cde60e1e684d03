package surveyform

import (
	"context"

	"github.com/kei-mag/survey-form-test/internal/formconfig/loader"
	"github.com/kei-mag/survey-form-test/internal/formconfig/normalize"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// FormConfig aliases the validated model for callers that only import the
// root package.
type FormConfig = formconfig.FormConfig

// PathOptions aliases formconfig.PathOptions.
type PathOptions = formconfig.PathOptions

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...formconfig.LoaderOption) formconfig.Loader {
	cfg := formconfig.NewLoaderOptions(options...)
	return loader.New(cfg)
}

// NewNormalizer returns the YAML normaliser used by the default loader.
func NewNormalizer() formconfig.Normalizer {
	return normalize.New()
}

// Load resolves path (explicit when non-empty, otherwise FORM_CONFIG_PATH or
// form.yml in the working directory) and returns the validated config.
func Load(ctx context.Context, path string) (FormConfig, error) {
	return LoadWithOptions(ctx, PathOptions{Explicit: path})
}

// LoadWithOptions is Load with full control over path resolution.
func LoadWithOptions(ctx context.Context, opts PathOptions) (FormConfig, error) {
	resolved, err := formconfig.ResolvePath(opts)
	if err != nil {
		return FormConfig{}, err
	}
	return NewLoader().Load(ctx, formconfig.SourceFromFile(resolved))
}

// Parse validates an in-memory YAML document.
func Parse(raw []byte) (FormConfig, error) {
	return normalize.Bytes(raw, "")
}
