package vanilla

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla/components"
)

// BuildOptions controls BuildForm.
type BuildOptions struct {
	// Registry maps item types to body renderers (default registry when nil).
	Registry *components.Registry
	// Messages are the localised renderer strings.
	Messages render.Messages
	// IDs yields one scope per section (random scope when nil).
	IDs render.IDScope
	// Description builds the description element. Plain text when nil.
	Description func(text string) *html.Node
}

// BuildForm returns a detached <form> tree with one <section> per item in
// list order. It performs no I/O and never mutates cfg.
func BuildForm(cfg formconfig.FormConfig, opts BuildOptions) *html.Node {
	registry := opts.Registry
	if registry == nil {
		registry = defaultRegistry
	}
	ids := opts.IDs
	if ids == nil {
		ids = render.NewIDScope()
	}
	describe := opts.Description
	if describe == nil {
		describe = plainDescription
	}

	form := components.Element(atom.Form, components.Attr("class", ClassForm.String()))
	for index, item := range cfg.Contents {
		form.AppendChild(buildSection(item, index, ids.Next(), registry, opts.Messages, describe))
	}
	return form
}

func buildSection(item formconfig.FormItem, index int, scope string, registry *components.Registry, messages render.Messages, describe func(string) *html.Node) *html.Node {
	header := item.Header()
	field := components.Field{
		Index:    index,
		Scope:    scope,
		TitleID:  scope + "-title",
		Messages: messages,
	}

	head := components.Element(atom.Header, components.Attr("class", ClassSectionHeader.String()))
	components.Append(head, components.Append(
		components.Element(atom.H2,
			components.Attr("class", ClassSectionTitle.String()),
			components.Attr("id", field.TitleID),
		),
		components.Text(header.Title),
	))
	if header.Description != "" {
		head.AppendChild(describe(header.Description))
	}

	body := components.Element(atom.Div, components.Attr("class", ClassSectionBody.String()))
	if descriptor, ok := registry.Descriptor(header.Type); ok {
		components.Append(body, descriptor.Renderer(item, field)...)
	}

	section := components.Element(atom.Section, components.Attr("class", ClassSection.String()))
	return components.Append(section, head, body)
}

func plainDescription(text string) *html.Node {
	return components.Append(
		components.Element(atom.P, components.Attr("class", ClassSectionDescription.String())),
		components.Text(text),
	)
}

var defaultRegistry = components.NewDefaultRegistry()
