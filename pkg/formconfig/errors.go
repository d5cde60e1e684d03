package formconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that the resolved config path does not exist.
	ErrNotFound = errors.New("formconfig: config file not found")
	// ErrParse reports a YAML syntax error.
	ErrParse = errors.New("formconfig: document is not valid YAML")
	// ErrStructure reports a top level that is not a mapping, a contents value
	// that is not a sequence, or an item that is not a mapping.
	ErrStructure = errors.New("formconfig: invalid document structure")
	// ErrMissingField reports a required field that is absent or blank.
	ErrMissingField = errors.New("formconfig: missing required field")
	// ErrTypeMismatch reports a field holding the wrong primitive type.
	ErrTypeMismatch = errors.New("formconfig: field has the wrong type")
	// ErrUnsupportedVersion reports a syntax value other than SyntaxV1.
	ErrUnsupportedVersion = errors.New("formconfig: unsupported syntax version")
	// ErrUnknownType reports an item type outside the closed set.
	ErrUnknownType = errors.New("formconfig: unknown item type")
	// ErrInvalidChoices reports a missing, empty, or malformed choices list.
	ErrInvalidChoices = errors.New("formconfig: invalid choices")
)

// NotFoundError is returned when the resolved path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("formconfig: form config file not found: %s", e.Path)
}

// notFoundMessages holds the user-facing text for NotFoundError, keyed by
// base language. "ja" is the fallback.
var notFoundMessages = map[string]string{
	"ja": "フォーム設定ファイルが見つかりません: ",
	"en": "Form config file not found: ",
}

// Message returns the localised, user-facing text naming the missing path.
// Regional tags use their base language; unknown locales get Japanese.
func (e *NotFoundError) Message(locale string) string {
	base, _, _ := strings.Cut(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")), "-")
	prefix, ok := notFoundMessages[base]
	if !ok {
		prefix = notFoundMessages["ja"]
	}
	return prefix + e.Path
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Unwrap exposes the underlying fs error.
func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError wraps a YAML syntax failure.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("formconfig: parse document: %v", e.Err)
	}
	return fmt.Sprintf("formconfig: parse %s: %v", e.Source, e.Err)
}

// Is lets errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap exposes the YAML decoder error.
func (e *ParseError) Unwrap() error { return e.Err }

// FieldError describes a structural or validation failure at a specific
// document location. Kind is one of the sentinel errors above and is matched
// by errors.Is.
type FieldError struct {
	Kind error
	// Field is the dotted path of the offending value, e.g.
	// "contents[2].choices". Empty for document-level failures.
	Field string
	// Index is the contents index, or -1 for top-level fields.
	Index int
	// ChoiceIndex is the offending element inside choices, or -1.
	ChoiceIndex int
	// Value is the offending scalar value where one exists.
	Value string
	// Line and Column locate the node in the source document (1-based, 0 if
	// unknown).
	Line   int
	Column int
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("formconfig: ")
	switch e.Kind {
	case ErrMissingField:
		fmt.Fprintf(&b, "%s must be a non-empty string", e.Field)
	case ErrTypeMismatch:
		fmt.Fprintf(&b, "%s must be a string", e.Field)
	case ErrUnsupportedVersion:
		fmt.Fprintf(&b, "unsupported syntax %q", e.Value)
	case ErrUnknownType:
		fmt.Fprintf(&b, "unknown type %q at contents[%d]", e.Value, e.Index)
	case ErrInvalidChoices:
		if e.ChoiceIndex >= 0 {
			fmt.Fprintf(&b, "%s[%d] must be a non-empty string", e.Field, e.ChoiceIndex)
		} else {
			fmt.Fprintf(&b, "%s must be a sequence containing at least one string", e.Field)
		}
	case ErrStructure:
		if e.Field == "" {
			b.WriteString("document must be a mapping")
		} else if e.Field == "contents" {
			b.WriteString("contents must be a sequence")
		} else {
			fmt.Fprintf(&b, "%s must be a mapping", e.Field)
		}
	default:
		fmt.Fprintf(&b, "invalid value at %s", e.Field)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d, column %d)", e.Line, e.Column)
	}
	return b.String()
}

// Is lets errors.Is match the Kind sentinel.
func (e *FieldError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// AsFieldError is a convenience wrapper around errors.As.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
