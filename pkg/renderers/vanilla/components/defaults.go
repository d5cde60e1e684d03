package components

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// NewDefaultRegistry returns a registry with a renderer for every item type.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(formconfig.TypeOneLineText, Descriptor{Renderer: textInput})
	registry.MustRegister(formconfig.TypeMultiLineText, Descriptor{Renderer: textarea})
	registry.MustRegister(formconfig.TypeRadio, Descriptor{Renderer: choiceGroup("radio")})
	registry.MustRegister(formconfig.TypeCheckbox, Descriptor{Renderer: choiceGroup("checkbox")})
	registry.MustRegister(formconfig.TypePulldown, Descriptor{Renderer: pulldown})
	registry.MustRegister(formconfig.TypeFile, Descriptor{Renderer: fileInput})
	return registry
}

// TextareaRows is the visible-row hint on multi-line inputs.
const TextareaRows = "4"

func controlAttrs(field Field, extra ...html.Attribute) []html.Attribute {
	attrs := []html.Attribute{
		Attr("id", field.ControlID()),
		Attr("name", field.Name()),
		Attr("aria-labelledby", field.TitleID),
	}
	return append(attrs, extra...)
}

func textInput(item formconfig.FormItem, field Field) []*html.Node {
	attrs := append([]html.Attribute{Attr("class", ClassInput), Attr("type", "text")}, controlAttrs(field)...)
	if text, ok := item.(formconfig.OneLineText); ok && text.ValidationRegex != "" {
		attrs = append(attrs, Attr("pattern", text.ValidationRegex))
	}
	return []*html.Node{Element(atom.Input, attrs...)}
}

func textarea(_ formconfig.FormItem, field Field) []*html.Node {
	attrs := append([]html.Attribute{Attr("class", ClassInput+" "+ClassTextarea)}, controlAttrs(field, Attr("rows", TextareaRows))...)
	return []*html.Node{Element(atom.Textarea, attrs...)}
}

func choiceGroup(inputType string) Renderer {
	return func(item formconfig.FormItem, field Field) []*html.Node {
		choices, ok := item.(formconfig.Choices)
		if !ok {
			return nil
		}
		fieldset := Element(atom.Fieldset,
			Attr("class", ClassFieldset),
			Attr("aria-labelledby", field.TitleID),
		)
		for idx, choice := range choices.Choices {
			id := field.ChoiceID(idx)
			label := Element(atom.Label, Attr("class", ClassChoiceLabel), Attr("for", id))
			Append(label,
				Element(atom.Input,
					Attr("class", ClassChoiceInput),
					Attr("type", inputType),
					Attr("id", id),
					Attr("name", field.Name()),
					Attr("value", choice),
				),
				Append(Element(atom.Span), Text(choice)),
			)
			fieldset.AppendChild(label)
		}
		return []*html.Node{fieldset}
	}
}

func pulldown(item formconfig.FormItem, field Field) []*html.Node {
	choices, ok := item.(formconfig.Choices)
	if !ok {
		return nil
	}
	sel := Element(atom.Select, append([]html.Attribute{Attr("class", ClassInput)}, controlAttrs(field)...)...)
	Append(sel, Append(
		Element(atom.Option, Attr("value", ""), Attr("disabled", ""), Attr("selected", "")),
		Text(field.Messages.SelectPlaceholder),
	))
	for _, choice := range choices.Choices {
		Append(sel, Append(Element(atom.Option, Attr("value", choice)), Text(choice)))
	}
	return []*html.Node{sel}
}

func fileInput(item formconfig.FormItem, field Field) []*html.Node {
	file, _ := item.(formconfig.File)

	attrs := append([]html.Attribute{Attr("class", ClassInput), Attr("type", "file")}, controlAttrs(field)...)
	if file.FileExt != "" {
		attrs = append(attrs, Attr("accept", file.FileExt))
	}
	wrapper := Append(Element(atom.Div, Attr("class", ClassFileWrapper)), Element(atom.Input, attrs...))

	if file.FileExt == "" && file.MaxFileSize == "" {
		return []*html.Node{wrapper}
	}
	help := Element(atom.P, Attr("class", ClassFileHelp))
	if file.FileExt != "" {
		Append(help, Append(Element(atom.Span), Text(field.Messages.AllowedExtensions+file.FileExt)))
	}
	if file.FileExt != "" && file.MaxFileSize != "" {
		Append(help, Append(Element(atom.Span), Text(field.Messages.HintSeparator)))
	}
	if file.MaxFileSize != "" {
		Append(help, Append(Element(atom.Span), Text(field.Messages.MaxFileSize+file.MaxFileSize)))
	}
	wrapper.AppendChild(help)
	return []*html.Node{wrapper}
}
