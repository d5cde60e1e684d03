package normalize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

const (
	keySyntax          = "syntax"
	keyName            = "name"
	keyContents        = "contents"
	keyType            = "type"
	keyTitle           = "title"
	keyDescription     = "description"
	keyValidationRegex = "validation-regex"
	keyChoices         = "choices"
	keyFileExt         = "file-ext"
)

// fileSizeKeys are tried in order; the first non-null entry wins.
var fileSizeKeys = []string{"maxfilesize", "max-file-size"}

// Normalizer implements formconfig.Normalizer over gopkg.in/yaml.v3 node
// trees so errors can point at source lines.
type Normalizer struct{}

var _ formconfig.Normalizer = (*Normalizer)(nil)

// New returns the default YAML normaliser.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize parses and validates doc. It returns either a complete
// FormConfig or an error, never both.
func (n *Normalizer) Normalize(doc formconfig.Document) (formconfig.FormConfig, error) {
	return Bytes(doc.Raw(), doc.Location())
}

// Bytes parses raw YAML and validates it. source is only used in parse error
// messages.
func Bytes(raw []byte, source string) (formconfig.FormConfig, error) {
	root, err := parse(raw, source)
	if err != nil {
		return formconfig.FormConfig{}, err
	}
	if root == nil || root.Kind != yaml.MappingNode {
		fe := &formconfig.FieldError{Kind: formconfig.ErrStructure, Index: -1, ChoiceIndex: -1}
		if root != nil {
			fe.Line, fe.Column = root.Line, root.Column
		}
		return formconfig.FormConfig{}, fe
	}

	syntax, err := requireString(root, keySyntax, keySyntax, -1)
	if err != nil {
		return formconfig.FormConfig{}, err
	}
	if syntax != formconfig.SyntaxV1 {
		node := lookup(root, keySyntax)
		return formconfig.FormConfig{}, &formconfig.FieldError{
			Kind:        formconfig.ErrUnsupportedVersion,
			Field:       keySyntax,
			Index:       -1,
			ChoiceIndex: -1,
			Value:       syntax,
			Line:        node.Line,
			Column:      node.Column,
		}
	}

	name, err := requireString(root, keyName, keyName, -1)
	if err != nil {
		return formconfig.FormConfig{}, err
	}

	contentsNode := lookup(root, keyContents)
	if contentsNode == nil || contentsNode.Kind != yaml.SequenceNode {
		fe := &formconfig.FieldError{
			Kind:        formconfig.ErrStructure,
			Field:       keyContents,
			Index:       -1,
			ChoiceIndex: -1,
		}
		fe.Line, fe.Column = position(contentsNode, root)
		return formconfig.FormConfig{}, fe
	}

	contents := make([]formconfig.FormItem, 0, len(contentsNode.Content))
	for index, raw := range contentsNode.Content {
		item, err := normalizeItem(resolve(raw), index)
		if err != nil {
			return formconfig.FormConfig{}, err
		}
		contents = append(contents, item)
	}

	return formconfig.FormConfig{
		Syntax:   formconfig.SyntaxV1,
		Name:     name,
		Contents: contents,
	}, nil
}

func parse(raw []byte, source string) (*yaml.Node, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &formconfig.ParseError{Source: source, Err: err}
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, &formconfig.ParseError{Source: source, Err: errMultipleDocuments}
	case !errors.Is(err, io.EOF):
		return nil, &formconfig.ParseError{Source: source, Err: err}
	}

	if err := checkMappings(&doc); err != nil {
		return nil, &formconfig.ParseError{Source: source, Err: err}
	}

	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		return resolve(doc.Content[0]), nil
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return resolve(&doc), nil
}

var errMultipleDocuments = errors.New("expected a single document in the stream, found more")

// checkMappings rejects repeated keys and merge keys whose value is not a
// mapping or a sequence of mappings. Alias targets are checked where they are
// defined.
func checkMappings(node *yaml.Node) error {
	if node == nil || node.Kind == yaml.AliasNode {
		return nil
	}
	if node.Kind == yaml.MappingNode {
		seen := make(map[string]struct{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if isMergeKey(key) {
				if !mergeable(node.Content[i+1]) {
					return fmt.Errorf("cannot merge mappings, the value of << is not a mapping (line %d, column %d)", key.Line, key.Column)
				}
				continue
			}
			if key.Kind != yaml.ScalarNode {
				continue
			}
			if _, dup := seen[key.Value]; dup {
				return fmt.Errorf("duplicated mapping key %q (line %d, column %d)", key.Value, key.Line, key.Column)
			}
			seen[key.Value] = struct{}{}
		}
	}
	for _, child := range node.Content {
		if err := checkMappings(child); err != nil {
			return err
		}
	}
	return nil
}

func isMergeKey(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

func mergeable(value *yaml.Node) bool {
	value = resolve(value)
	if value == nil {
		return false
	}
	switch value.Kind {
	case yaml.MappingNode:
		return true
	case yaml.SequenceNode:
		for _, entry := range value.Content {
			if entry = resolve(entry); entry == nil || entry.Kind != yaml.MappingNode {
				return false
			}
		}
		return true
	}
	return false
}

func normalizeItem(node *yaml.Node, index int) (formconfig.FormItem, error) {
	prefix := fmt.Sprintf("%s[%d]", keyContents, index)
	if node == nil || node.Kind != yaml.MappingNode || isNull(node) {
		fe := &formconfig.FieldError{
			Kind:        formconfig.ErrStructure,
			Field:       prefix,
			Index:       index,
			ChoiceIndex: -1,
		}
		if node != nil {
			fe.Line, fe.Column = node.Line, node.Column
		}
		return nil, fe
	}

	itemType, err := requireString(node, keyType, prefix+"."+keyType, index)
	if err != nil {
		return nil, err
	}
	title, err := requireString(node, keyTitle, prefix+"."+keyTitle, index)
	if err != nil {
		return nil, err
	}
	description, err := optionalString(node, keyDescription, prefix+"."+keyDescription, index)
	if err != nil {
		return nil, err
	}

	header := formconfig.ItemHeader{
		Type:        formconfig.ItemType(itemType),
		Title:       title,
		Description: description,
	}

	switch header.Type {
	case formconfig.TypeOneLineText:
		regex, err := optionalString(node, keyValidationRegex, prefix+"."+keyValidationRegex, index)
		if err != nil {
			return nil, err
		}
		return formconfig.OneLineText{ItemHeader: header, ValidationRegex: regex}, nil
	case formconfig.TypeMultiLineText:
		return formconfig.MultiLineText{ItemHeader: header}, nil
	case formconfig.TypeRadio, formconfig.TypeCheckbox, formconfig.TypePulldown:
		choices, err := requireChoices(node, prefix+"."+keyChoices, index)
		if err != nil {
			return nil, err
		}
		return formconfig.Choices{ItemHeader: header, Choices: choices}, nil
	case formconfig.TypeFile:
		ext, err := optionalString(node, keyFileExt, prefix+"."+keyFileExt, index)
		if err != nil {
			return nil, err
		}
		size, err := fileSize(node, prefix, index)
		if err != nil {
			return nil, err
		}
		return formconfig.File{ItemHeader: header, FileExt: ext, MaxFileSize: size}, nil
	default:
		typeNode := lookup(node, keyType)
		return nil, &formconfig.FieldError{
			Kind:        formconfig.ErrUnknownType,
			Field:       prefix + "." + keyType,
			Index:       index,
			ChoiceIndex: -1,
			Value:       itemType,
			Line:        typeNode.Line,
			Column:      typeNode.Column,
		}
	}
}

func fileSize(node *yaml.Node, prefix string, index int) (string, error) {
	for _, key := range fileSizeKeys {
		value := lookup(node, key)
		if value == nil || isNull(value) {
			continue
		}
		return optionalString(node, key, prefix+"."+key, index)
	}
	return "", nil
}

func requireChoices(parent *yaml.Node, field string, index int) ([]string, error) {
	node := lookup(parent, keyChoices)
	if node == nil || node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		fe := &formconfig.FieldError{
			Kind:        formconfig.ErrInvalidChoices,
			Field:       field,
			Index:       index,
			ChoiceIndex: -1,
		}
		fe.Line, fe.Column = position(node, parent)
		return nil, fe
	}

	choices := make([]string, 0, len(node.Content))
	for idx, raw := range node.Content {
		entry := resolve(raw)
		if !isString(entry) || strings.TrimSpace(entry.Value) == "" {
			fe := &formconfig.FieldError{
				Kind:        formconfig.ErrInvalidChoices,
				Field:       field,
				Index:       index,
				ChoiceIndex: idx,
			}
			fe.Line, fe.Column = position(entry, node)
			return nil, fe
		}
		choices = append(choices, entry.Value)
	}
	return choices, nil
}

func requireString(parent *yaml.Node, key, field string, index int) (string, error) {
	node := lookup(parent, key)
	if node == nil || isNull(node) {
		fe := &formconfig.FieldError{Kind: formconfig.ErrMissingField, Field: field, Index: index, ChoiceIndex: -1}
		fe.Line, fe.Column = position(node, parent)
		return "", fe
	}
	if !isString(node) {
		return "", &formconfig.FieldError{
			Kind:        formconfig.ErrTypeMismatch,
			Field:       field,
			Index:       index,
			ChoiceIndex: -1,
			Value:       node.Value,
			Line:        node.Line,
			Column:      node.Column,
		}
	}
	if strings.TrimSpace(node.Value) == "" {
		return "", &formconfig.FieldError{
			Kind:        formconfig.ErrMissingField,
			Field:       field,
			Index:       index,
			ChoiceIndex: -1,
			Line:        node.Line,
			Column:      node.Column,
		}
	}
	return node.Value, nil
}

func optionalString(parent *yaml.Node, key, field string, index int) (string, error) {
	node := lookup(parent, key)
	if node == nil || isNull(node) {
		return "", nil
	}
	if !isString(node) {
		return "", &formconfig.FieldError{
			Kind:        formconfig.ErrTypeMismatch,
			Field:       field,
			Index:       index,
			ChoiceIndex: -1,
			Value:       node.Value,
			Line:        node.Line,
			Column:      node.Column,
		}
	}
	return node.Value, nil
}

// lookup returns the value node for key in a mapping, following aliases.
// Explicit keys win over keys merged in through "<<"; among merge sources the
// earlier one wins.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	return lookupDepth(mapping, key, 0)
}

// maxMergeDepth bounds merge chains, which can be self-referential.
const maxMergeDepth = 32

func lookupDepth(mapping *yaml.Node, key string, depth int) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode || depth > maxMergeDepth {
		return nil
	}
	var merges []*yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k := resolve(mapping.Content[i])
		if isMergeKey(k) {
			merges = append(merges, resolve(mapping.Content[i+1]))
			continue
		}
		if k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(mapping.Content[i+1])
		}
	}
	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge != nil && merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, src := range sources {
			if found := lookupDepth(resolve(src), key, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isString(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str"
}

func isNull(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func position(node, fallback *yaml.Node) (int, int) {
	if node != nil {
		return node.Line, node.Column
	}
	if fallback != nil {
		return fallback.Line, fallback.Column
	}
	return 0, 0
}
