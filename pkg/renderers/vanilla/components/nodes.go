package components

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element creates a detached element node. Attributes are kept in the order
// given so serialised output is stable.
func Element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// Text creates a text node. Serialisation escapes it.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr builds a single attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Append adds children to parent and returns parent. Nil children are
// skipped.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, child := range children {
		if child != nil {
			parent.AppendChild(child)
		}
	}
	return parent
}
