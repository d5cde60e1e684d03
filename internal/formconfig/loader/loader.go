package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/kei-mag/survey-form-test/internal/formconfig/normalize"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// Loader implements formconfig.Loader by reading a file or fs.FS entry and
// handing the bytes to a Normalizer.
type Loader struct {
	fs         fs.FS
	normalizer formconfig.Normalizer
}

var _ formconfig.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options formconfig.LoaderOptions) *Loader {
	n := options.Normalizer
	if n == nil {
		n = normalize.New()
	}
	return &Loader{
		fs:         options.FileSystem,
		normalizer: n,
	}
}

// Load reads src and validates it. A missing file yields a
// *formconfig.NotFoundError; other read failures are returned unmodified.
func (l *Loader) Load(ctx context.Context, src formconfig.Source) (formconfig.FormConfig, error) {
	if src == nil {
		return formconfig.FormConfig{}, errors.New("formconfig loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case formconfig.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case formconfig.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("formconfig loader: unsupported source kind")
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formconfig.FormConfig{}, &formconfig.NotFoundError{Path: src.Location(), Err: err}
		}
		return formconfig.FormConfig{}, err
	}

	doc, err := formconfig.NewDocument(src, data)
	if err != nil {
		return formconfig.FormConfig{}, err
	}
	return l.normalizer.Normalize(doc)
}
