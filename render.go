package surveyform

import (
	"context"

	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

// RenderOptions describes per-call renderer settings (locale, id scope,
// theme).
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render produces the full HTML page for cfg with the default vanilla
// renderer.
func Render(ctx context.Context, cfg FormConfig, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Config:        &cfg,
		RenderOptions: opts,
	})
}

// GenerateHTML loads the form at path (resolved like Load) and renders it
// with the named renderer, or the default when rendererName is empty.
func GenerateHTML(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Path:     PathOptions{Explicit: path},
		Renderer: rendererName,
	})
}
