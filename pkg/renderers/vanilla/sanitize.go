package vanilla

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla/components"
)

// DefaultDescriptionPolicy allows inline formatting and links in rich
// descriptions. Everything else is stripped.
func DefaultDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AllowElements("b", "strong", "i", "em", "u", "code", "br", "span", "small")
	return p
}

// richDescription sanitises text with policy and parses the result into a
// <div> so block-free markup survives as real nodes.
func richDescription(policy *bluemonday.Policy) func(string) *html.Node {
	return func(text string) *html.Node {
		container := components.Element(atom.Div, components.Attr("class", ClassSectionDescription.String()))
		clean := policy.Sanitize(text)
		nodes, err := html.ParseFragment(strings.NewReader(clean), components.Element(atom.Div))
		if err != nil {
			return components.Append(container, components.Text(text))
		}
		return components.Append(container, nodes...)
	}
}
