package formconfig

// SyntaxV1 is the only document syntax version currently accepted.
const SyntaxV1 = "v1"

// ItemType is the discriminant of a FormItem.
type ItemType string

const (
	TypeOneLineText   ItemType = "oneline-text"
	TypeMultiLineText ItemType = "multiline-text"
	TypeRadio         ItemType = "radio"
	TypeCheckbox      ItemType = "checkbox"
	TypePulldown      ItemType = "pulldown"
	TypeFile          ItemType = "file"
)

// ItemTypes returns every discriminant a loaded document may contain, in
// declaration order.
func ItemTypes() []ItemType {
	return []ItemType{
		TypeOneLineText,
		TypeMultiLineText,
		TypeRadio,
		TypeCheckbox,
		TypePulldown,
		TypeFile,
	}
}

// Known reports whether t belongs to the closed set of item types.
func (t ItemType) Known() bool {
	switch t {
	case TypeOneLineText, TypeMultiLineText, TypeRadio, TypeCheckbox, TypePulldown, TypeFile:
		return true
	default:
		return false
	}
}

// HasChoices reports whether items of this type carry a choices list.
func (t ItemType) HasChoices() bool {
	switch t {
	case TypeRadio, TypeCheckbox, TypePulldown:
		return true
	default:
		return false
	}
}

// FormConfig is the validated, render-ready form description. Values are
// built once by a Loader and must be treated as immutable afterwards.
type FormConfig struct {
	Syntax   string     `json:"syntax"`
	Name     string     `json:"name"`
	Contents []FormItem `json:"contents"`
}

// FormItem is implemented only by the variant types in this package.
type FormItem interface {
	// Header exposes the fields shared by every variant.
	Header() ItemHeader
	isFormItem()
}

// ItemHeader carries the fields common to every item variant.
type ItemHeader struct {
	Type        ItemType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
}

// Header returns the shared header fields.
func (h ItemHeader) Header() ItemHeader { return h }

// OneLineText is a single-line text input.
type OneLineText struct {
	ItemHeader
	// ValidationRegex is forwarded verbatim as a native pattern constraint.
	// The loader never compiles or checks it.
	ValidationRegex string `json:"validationRegex,omitempty"`
}

// MultiLineText is a free-form textarea.
type MultiLineText struct {
	ItemHeader
}

// Choices backs the radio, checkbox, and pulldown variants. Type selects the
// selection semantics.
type Choices struct {
	ItemHeader
	Choices []string `json:"choices"`
}

// File is a file upload input. Both hints are opaque display strings.
type File struct {
	ItemHeader
	FileExt     string `json:"fileExt,omitempty"`
	MaxFileSize string `json:"maxFileSize,omitempty"`
}

func (OneLineText) isFormItem()   {}
func (MultiLineText) isFormItem() {}
func (Choices) isFormItem()       {}
func (File) isFormItem()          {}

var (
	_ FormItem = OneLineText{}
	_ FormItem = MultiLineText{}
	_ FormItem = Choices{}
	_ FormItem = File{}
)

// Clone returns a deep copy so callers can hand the config to code they do
// not trust to leave it untouched.
func (c FormConfig) Clone() FormConfig {
	out := FormConfig{Syntax: c.Syntax, Name: c.Name}
	if c.Contents == nil {
		return out
	}
	out.Contents = make([]FormItem, len(c.Contents))
	for i, item := range c.Contents {
		if choice, ok := item.(Choices); ok {
			choice.Choices = append([]string(nil), choice.Choices...)
			item = choice
		}
		out.Contents[i] = item
	}
	return out
}
