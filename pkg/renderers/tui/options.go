package tui

// OutputFormat controls how collected answers are serialised.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object keyed by field name.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits the body a browser would submit for
	// the HTML form.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits "title: answer" lines in form order.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// SubmitTransformer mutates collected answers before serialisation.
type SubmitTransformer func(*State) error

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialisation format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer lets callers adjust answers prior to serialisation.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithFileCheck replaces the validator applied to file path answers. Pass
// nil to accept any path.
func WithFileCheck(fn func(path string) error) Option {
	return func(r *Renderer) {
		r.fileCheck = fn
	}
}
