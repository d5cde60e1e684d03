package normalize_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kei-mag/survey-form-test/internal/formconfig/normalize"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

func TestBytes_AllItemTypes(t *testing.T) {
	doc := `
syntax: v1
name: Survey
contents:
  - type: oneline-text
    title: Name
    validation-regex: "^[a-z]+$"
  - type: multiline-text
    title: Comment
    description: Anything else?
  - type: radio
    title: Gender
    choices: [A, B]
  - type: checkbox
    title: Topics
    choices: [X, Y, Z]
  - type: pulldown
    title: Age
    choices: [Young, Old]
  - type: file
    title: Attachment
    file-ext: .pdf
    max-file-size: 5MB
`
	got, err := normalize.Bytes([]byte(doc), "inline")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := formconfig.FormConfig{
		Syntax: "v1",
		Name:   "Survey",
		Contents: []formconfig.FormItem{
			formconfig.OneLineText{
				ItemHeader:      formconfig.ItemHeader{Type: formconfig.TypeOneLineText, Title: "Name"},
				ValidationRegex: "^[a-z]+$",
			},
			formconfig.MultiLineText{
				ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeMultiLineText, Title: "Comment", Description: "Anything else?"},
			},
			formconfig.Choices{
				ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeRadio, Title: "Gender"},
				Choices:    []string{"A", "B"},
			},
			formconfig.Choices{
				ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeCheckbox, Title: "Topics"},
				Choices:    []string{"X", "Y", "Z"},
			},
			formconfig.Choices{
				ItemHeader: formconfig.ItemHeader{Type: formconfig.TypePulldown, Title: "Age"},
				Choices:    []string{"Young", "Old"},
			},
			formconfig.File{
				ItemHeader:  formconfig.ItemHeader{Type: formconfig.TypeFile, Title: "Attachment"},
				FileExt:     ".pdf",
				MaxFileSize: "5MB",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBytes_EmptyContents(t *testing.T) {
	got, err := normalize.Bytes([]byte("syntax: v1\nname: Empty\ncontents: []\n"), "inline")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.Name != "Empty" || len(got.Contents) != 0 {
		t.Fatalf("unexpected config: %#v", got)
	}
}

func TestBytes_NullOptionalFieldsAreAbsent(t *testing.T) {
	doc := `
syntax: v1
name: Survey
contents:
  - type: oneline-text
    title: Name
    description: ~
    validation-regex: null
`
	got, err := normalize.Bytes([]byte(doc), "inline")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	item, ok := got.Contents[0].(formconfig.OneLineText)
	if !ok {
		t.Fatalf("expected OneLineText, got %T", got.Contents[0])
	}
	if item.Description != "" || item.ValidationRegex != "" {
		t.Fatalf("expected null optionals to be absent: %#v", item)
	}
}

func TestBytes_FileSizeKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "short key wins", body: "maxfilesize: 1MB\n    max-file-size: 2MB", want: "1MB"},
		{name: "null short key falls through", body: "maxfilesize: ~\n    max-file-size: 2MB", want: "2MB"},
		{name: "long key only", body: "max-file-size: 3MB", want: "3MB"},
		{name: "neither", body: "file-ext: .txt", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "syntax: v1\nname: F\ncontents:\n  - type: file\n    title: Upload\n    " + tt.body + "\n"
			got, err := normalize.Bytes([]byte(doc), "inline")
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			file := got.Contents[0].(formconfig.File)
			if file.MaxFileSize != tt.want {
				t.Fatalf("max file size: want %q, got %q", tt.want, file.MaxFileSize)
			}
		})
	}
}

func TestBytes_Aliases(t *testing.T) {
	doc := `
syntax: v1
name: Aliased
contents:
  - type: radio
    title: First
    choices: &opts [Alpha, Beta]
  - type: pulldown
    title: Second
    choices: *opts
`
	got, err := normalize.Bytes([]byte(doc), "inline")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	second := got.Contents[1].(formconfig.Choices)
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, second.Choices); diff != "" {
		t.Fatalf("aliased choices mismatch (-want +got):\n%s", diff)
	}
}

func TestBytes_MergeKeys(t *testing.T) {
	doc := `
syntax: v1
name: Merged
base: &base
  type: radio
  title: Base title
  choices: [x, y]
extra: &extra
  description: From extra
  title: Extra title
contents:
  - <<: *base
    title: Pick
  - <<: [*extra, *base]
    type: pulldown
  - <<: *base
    <<: *extra
`
	got, err := normalize.Bytes([]byte(doc), "inline")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := []formconfig.FormItem{
		formconfig.Choices{
			ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeRadio, Title: "Pick"},
			Choices:    []string{"x", "y"},
		},
		formconfig.Choices{
			ItemHeader: formconfig.ItemHeader{Type: formconfig.TypePulldown, Title: "Extra title", Description: "From extra"},
			Choices:    []string{"x", "y"},
		},
		formconfig.Choices{
			ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeRadio, Title: "Base title", Description: "From extra"},
			Choices:    []string{"x", "y"},
		},
	}
	if diff := cmp.Diff(want, got.Contents); diff != "" {
		t.Fatalf("merged items mismatch (-want +got):\n%s", diff)
	}
}

func TestBytes_InvalidMergeValue(t *testing.T) {
	doc := "syntax: v1\nname: A\ncontents:\n  - <<: plain\n    type: multiline-text\n    title: T\n"
	_, err := normalize.Bytes([]byte(doc), "inline")
	if !errors.Is(err, formconfig.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestBytes_DuplicateKeys(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want string
	}{
		"top level": {
			doc:  "syntax: v1\nname: A\nname: B\ncontents: []\n",
			want: `duplicated mapping key "name" (line 3, column 1)`,
		},
		"inside item": {
			doc:  "syntax: v1\nname: A\ncontents:\n  - type: radio\n    title: T\n    choices: [a]\n    title: U\n",
			want: `duplicated mapping key "title" (line 7, column 5)`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := normalize.Bytes([]byte(tt.doc), "dup.yml")
			if !errors.Is(err, formconfig.ErrParse) {
				t.Fatalf("expected ErrParse, got cfg=%+v err=%v", cfg, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q should contain %q", err.Error(), tt.want)
			}
			if cfg.Name != "" || cfg.Contents != nil {
				t.Fatalf("no partial config on error, got %+v", cfg)
			}
		})
	}
}

func TestBytes_MultipleDocuments(t *testing.T) {
	doc := "syntax: v1\nname: A\ncontents: []\n---\nfoo: 1\n"
	_, err := normalize.Bytes([]byte(doc), "stream.yml")
	if !errors.Is(err, formconfig.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "single document") {
		t.Fatalf("unexpected message: %v", err)
	}

	if _, err := normalize.Bytes([]byte("---\nsyntax: v1\nname: A\ncontents: []\n...\n"), "single.yml"); err != nil {
		t.Fatalf("explicit markers around one document: %v", err)
	}
}

func TestBytes_Errors(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		kind        error
		field       string
		index       int
		choiceIndex int
	}{
		{name: "empty document", doc: "", kind: formconfig.ErrStructure, index: -1, choiceIndex: -1},
		{name: "comment only", doc: "# nothing\n", kind: formconfig.ErrStructure, index: -1, choiceIndex: -1},
		{name: "scalar document", doc: "hello\n", kind: formconfig.ErrStructure, index: -1, choiceIndex: -1},
		{name: "sequence document", doc: "- a\n- b\n", kind: formconfig.ErrStructure, index: -1, choiceIndex: -1},
		{name: "missing syntax", doc: "name: X\ncontents: []\n", kind: formconfig.ErrMissingField, field: "syntax", index: -1, choiceIndex: -1},
		{name: "numeric syntax", doc: "syntax: 1\nname: X\ncontents: []\n", kind: formconfig.ErrTypeMismatch, field: "syntax", index: -1, choiceIndex: -1},
		{name: "unsupported syntax", doc: "syntax: v2\nname: X\ncontents: []\n", kind: formconfig.ErrUnsupportedVersion, field: "syntax", index: -1, choiceIndex: -1},
		{name: "blank name", doc: "syntax: v1\nname: \"  \"\ncontents: []\n", kind: formconfig.ErrMissingField, field: "name", index: -1, choiceIndex: -1},
		{name: "missing contents", doc: "syntax: v1\nname: X\n", kind: formconfig.ErrStructure, field: "contents", index: -1, choiceIndex: -1},
		{name: "mapping contents", doc: "syntax: v1\nname: X\ncontents:\n  a: b\n", kind: formconfig.ErrStructure, field: "contents", index: -1, choiceIndex: -1},
		{name: "scalar item", doc: "syntax: v1\nname: X\ncontents:\n  - text\n", kind: formconfig.ErrStructure, field: "contents[0]", index: 0, choiceIndex: -1},
		{
			name:        "missing type",
			doc:         "syntax: v1\nname: X\ncontents:\n  - title: T\n",
			kind:        formconfig.ErrMissingField,
			field:       "contents[0].type",
			index:       0,
			choiceIndex: -1,
		},
		{
			name:        "missing title",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: multiline-text\n  - type: oneline-text\n    title: \"\"\n",
			kind:        formconfig.ErrMissingField,
			field:       "contents[0].title",
			index:       0,
			choiceIndex: -1,
		},
		{
			name:        "unknown type",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: multiline-text\n    title: ok\n  - type: slider\n    title: T\n",
			kind:        formconfig.ErrUnknownType,
			field:       "contents[1].type",
			index:       1,
			choiceIndex: -1,
		},
		{
			name:        "numeric description",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: multiline-text\n    title: T\n    description: 42\n",
			kind:        formconfig.ErrTypeMismatch,
			field:       "contents[0].description",
			index:       0,
			choiceIndex: -1,
		},
		{
			name:        "missing choices",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: radio\n    title: T\n",
			kind:        formconfig.ErrInvalidChoices,
			field:       "contents[0].choices",
			index:       0,
			choiceIndex: -1,
		},
		{
			name:        "empty choices",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: checkbox\n    title: T\n    choices: []\n",
			kind:        formconfig.ErrInvalidChoices,
			field:       "contents[0].choices",
			index:       0,
			choiceIndex: -1,
		},
		{
			name:        "blank choice",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: pulldown\n    title: T\n    choices: [A, \" \", C]\n",
			kind:        formconfig.ErrInvalidChoices,
			field:       "contents[0].choices",
			index:       0,
			choiceIndex: 1,
		},
		{
			name:        "numeric choice",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: radio\n    title: T\n    choices: [A, 3]\n",
			kind:        formconfig.ErrInvalidChoices,
			field:       "contents[0].choices",
			index:       0,
			choiceIndex: 1,
		},
		{
			name:        "numeric max size",
			doc:         "syntax: v1\nname: X\ncontents:\n  - type: file\n    title: T\n    maxfilesize: 10\n",
			kind:        formconfig.ErrTypeMismatch,
			field:       "contents[0].maxfilesize",
			index:       0,
			choiceIndex: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := normalize.Bytes([]byte(tt.doc), "inline")
			if err == nil {
				t.Fatalf("expected error, got config %#v", cfg)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			fe, ok := formconfig.AsFieldError(err)
			if !ok {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fe.Field != tt.field {
				t.Fatalf("field: want %q, got %q", tt.field, fe.Field)
			}
			if fe.Index != tt.index {
				t.Fatalf("index: want %d, got %d", tt.index, fe.Index)
			}
			if fe.ChoiceIndex != tt.choiceIndex {
				t.Fatalf("choice index: want %d, got %d", tt.choiceIndex, fe.ChoiceIndex)
			}
			if cfg.Name != "" || cfg.Contents != nil {
				t.Fatalf("expected zero config alongside error, got %#v", cfg)
			}
		})
	}
}

func TestBytes_ErrorCarriesPosition(t *testing.T) {
	doc := "syntax: v1\nname: X\ncontents:\n  - type: slider\n    title: T\n"
	_, err := normalize.Bytes([]byte(doc), "inline")
	fe, ok := formconfig.AsFieldError(err)
	if !ok {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if fe.Line != 4 {
		t.Fatalf("expected line 4, got %d", fe.Line)
	}
	if fe.Value != "slider" {
		t.Fatalf("expected offending value, got %q", fe.Value)
	}
}

func TestBytes_ParseError(t *testing.T) {
	_, err := normalize.Bytes([]byte("syntax: v1\nname: [unclosed\n"), "broken.yml")
	if !errors.Is(err, formconfig.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var pe *formconfig.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Source != "broken.yml" {
		t.Fatalf("source mismatch: %q", pe.Source)
	}
}

func TestNormalizer_UsesDocumentLocation(t *testing.T) {
	doc := formconfig.MustNewDocument(formconfig.SourceFromFS("forms/a.yml"), []byte("syntax: v1\nname: A\ncontents: []\n"))
	cfg, err := normalize.New().Normalize(doc)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Syntax != formconfig.SyntaxV1 {
		t.Fatalf("syntax mismatch: %q", cfg.Syntax)
	}
}
