package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

// Name is the registry name of this renderer.
const Name = "tui"

// Renderer implements render.Renderer by prompting for each item in a
// terminal and returning the answers. Nothing is persisted.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	fileCheck         func(string) error
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(),
		outputFormat: OutputFormatJSON,
		fileCheck:    checkRegularFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialisation format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every item in order. Answers use the same field-<index>
// names as the HTML form.
func (r *Renderer) Render(ctx context.Context, form formconfig.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	messages := opts.Messages()
	if err := r.driver.Info(ctx, form.Name); err != nil {
		return nil, err
	}

	state := NewState()
	for index, item := range form.Contents {
		if err := r.promptItem(ctx, index, item, messages, state); err != nil {
			return nil, err
		}
	}

	if r.submitTransformer != nil {
		if err := r.submitTransformer(state); err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(state)
}

func (r *Renderer) promptItem(ctx context.Context, index int, item formconfig.FormItem, messages render.Messages, state *State) error {
	header := item.Header()
	name := fmt.Sprintf("field-%d", index)

	switch v := item.(type) {
	case formconfig.OneLineText:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   header.Title,
			Help:      header.Description,
			Validator: patternValidator(v.ValidationRegex),
		})
		if err != nil {
			return err
		}
		state.Set(name, header.Title, answer)
	case formconfig.MultiLineText:
		answer, err := r.driver.TextArea(ctx, TextAreaConfig{Message: header.Title, Help: header.Description})
		if err != nil {
			return err
		}
		state.Set(name, header.Title, answer)
	case formconfig.Choices:
		return r.promptChoices(ctx, name, v, messages, state)
	case formconfig.File:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   header.Title,
			Help:      joinHelp(header.Description, fileHint(v, messages)),
			Validator: r.fileValidator(),
		})
		if err != nil {
			return err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			state.Set(name, header.Title, answer)
		}
	}
	return nil
}

func (r *Renderer) promptChoices(ctx context.Context, name string, item formconfig.Choices, messages render.Messages, state *State) error {
	cfg := SelectConfig{Message: item.Title, Help: item.Description}

	if item.Type == formconfig.TypeCheckbox {
		cfg.Options = append([]string(nil), item.Choices...)
		picked, err := r.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return err
		}
		var values []string
		for _, idx := range picked {
			if idx >= 0 && idx < len(item.Choices) {
				values = append(values, item.Choices[idx])
			}
		}
		if len(values) > 0 {
			state.Set(name, item.Title, values)
		}
		return nil
	}

	// Radio and pulldown start unselected, so the first option stands for
	// "no answer".
	cfg.Options = append([]string{messages.SelectPlaceholder}, item.Choices...)
	picked, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	if picked > 0 && picked <= len(item.Choices) {
		state.Set(name, item.Title, item.Choices[picked-1])
	}
	return nil
}

func (r *Renderer) fileValidator() func(string) error {
	if r.fileCheck == nil {
		return nil
	}
	check := r.fileCheck
	return func(path string) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return nil
		}
		return check(path)
	}
}

// patternValidator mirrors the HTML pattern attribute: the whole value must
// match and an empty value always passes. Patterns RE2 cannot compile are
// not enforced.
func patternValidator(pattern string) func(string) error {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil
	}
	return func(value string) error {
		if value == "" || re.MatchString(value) {
			return nil
		}
		return fmt.Errorf("value must match %s", pattern)
	}
}

func fileHint(item formconfig.File, messages render.Messages) string {
	var parts []string
	if item.FileExt != "" {
		parts = append(parts, messages.AllowedExtensions+item.FileExt)
	}
	if item.MaxFileSize != "" {
		parts = append(parts, messages.MaxFileSize+item.MaxFileSize)
	}
	return strings.Join(parts, messages.HintSeparator)
}

func joinHelp(parts ...string) string {
	var keep []string
	for _, p := range parts {
		if p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, "\n")
}

func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}

func (r *Renderer) serialize(state *State) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(state)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(state)), nil
	default:
		return json.Marshal(state)
	}
}

func encodeForm(state *State) string {
	values := url.Values{}
	for _, a := range state.Answers() {
		switch v := a.Value.(type) {
		case []string:
			for _, s := range v {
				values.Add(a.Name, s)
			}
		default:
			values.Set(a.Name, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

func prettyPrint(state *State) string {
	var b strings.Builder
	for _, a := range state.Answers() {
		switch v := a.Value.(type) {
		case []string:
			fmt.Fprintf(&b, "%s: %s\n", a.Title, strings.Join(v, ", "))
		default:
			fmt.Fprintf(&b, "%s: %v\n", a.Title, v)
		}
	}
	return b.String()
}
