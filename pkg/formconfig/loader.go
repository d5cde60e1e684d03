package formconfig

import (
	"context"
	"io/fs"
)

// Loader reads a form document from a Source and returns the validated
// FormConfig. Implementations never return a partially populated config.
type Loader interface {
	Load(ctx context.Context, src Source) (FormConfig, error)
}

// Normalizer turns raw document bytes into a FormConfig.
type Normalizer interface {
	Normalize(doc Document) (FormConfig, error)
}

// LoaderOptions configures the built-in loader.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS
	// Normalizer overrides the default YAML normaliser.
	Normalizer Normalizer
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// NewLoaderOptions applies the supplied options over the zero value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var opts LoaderOptions
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return opts
}

// WithFileSystem configures the fs.FS used for SourceFromFS sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}

// WithNormalizer swaps the document normaliser.
func WithNormalizer(n Normalizer) LoaderOption {
	return func(o *LoaderOptions) {
		if n != nil {
			o.Normalizer = n
		}
	}
}
