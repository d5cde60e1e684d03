// Package surveyform loads YAML survey definitions and renders them as
// accessible HTML forms.
//
// Quick start:
//
//	cfg, err := surveyform.Load(ctx, "")           // FORM_CONFIG_PATH or ./form.yml
//	html, err := surveyform.Render(ctx, cfg, surveyform.RenderOptions{})
//
// Lower-level building blocks live in pkg/formconfig (model and errors),
// pkg/orchestrator (pipeline), pkg/renderers/vanilla (HTML), and
// pkg/renderers/tui (terminal).
package surveyform
