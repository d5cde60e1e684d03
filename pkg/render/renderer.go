package render

import (
	"context"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// Renderer converts a FormConfig into a byte representation (an HTML
// fragment, a full page, a terminal transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form formconfig.FormConfig, options RenderOptions) ([]byte, error)
}
