package formconfig_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &formconfig.NotFoundError{Path: "/tmp/form.yml", Err: fs.ErrNotExist})

	if !errors.Is(err, formconfig.ErrNotFound) {
		t.Fatalf("expected ErrNotFound match")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist via Unwrap")
	}
	if !strings.Contains(err.Error(), "/tmp/form.yml") {
		t.Fatalf("message should name the path: %q", err.Error())
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &formconfig.NotFoundError{Path: "missing.yml"}

	tests := map[string]string{
		"":      "フォーム設定ファイルが見つかりません: missing.yml",
		"ja":    "フォーム設定ファイルが見つかりません: missing.yml",
		"en":    "Form config file not found: missing.yml",
		"en-US": "Form config file not found: missing.yml",
		"xx":    "フォーム設定ファイルが見つかりません: missing.yml",
	}
	for locale, want := range tests {
		if got := err.Message(locale); got != want {
			t.Errorf("Message(%q) = %q, want %q", locale, got, want)
		}
	}
}

func TestFieldError_Messages(t *testing.T) {
	tests := []struct {
		err  *formconfig.FieldError
		want string
	}{
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrStructure, Index: -1, ChoiceIndex: -1},
			want: "formconfig: document must be a mapping",
		},
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrStructure, Field: "contents", Index: -1, ChoiceIndex: -1, Line: 3, Column: 1},
			want: "formconfig: contents must be a sequence (line 3, column 1)",
		},
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrMissingField, Field: "contents[0].title", Index: 0, ChoiceIndex: -1},
			want: "formconfig: contents[0].title must be a non-empty string",
		},
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrUnknownType, Field: "contents[2].type", Index: 2, ChoiceIndex: -1, Value: "slider"},
			want: `formconfig: unknown type "slider" at contents[2]`,
		},
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrUnsupportedVersion, Field: "syntax", Index: -1, ChoiceIndex: -1, Value: "v2"},
			want: `formconfig: unsupported syntax "v2"`,
		},
		{
			err:  &formconfig.FieldError{Kind: formconfig.ErrInvalidChoices, Field: "contents[1].choices", Index: 1, ChoiceIndex: 2},
			want: "formconfig: contents[1].choices[2] must be a non-empty string",
		},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("want %q, got %q", tt.want, got)
		}
		if !errors.Is(tt.err, tt.err.Kind) {
			t.Errorf("errors.Is should match kind %v", tt.err.Kind)
		}
	}
}

func TestAsFieldError(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", &formconfig.FieldError{Kind: formconfig.ErrInvalidChoices, Field: "contents[0].choices", ChoiceIndex: -1})
	fe, ok := formconfig.AsFieldError(wrapped)
	if !ok || fe.Field != "contents[0].choices" {
		t.Fatalf("expected field error, got %v %v", fe, ok)
	}
	if errors.Is(wrapped, formconfig.ErrMissingField) {
		t.Fatalf("kind must not match unrelated sentinel")
	}
	if _, ok := formconfig.AsFieldError(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert")
	}
}

func TestFormConfigClone(t *testing.T) {
	cfg := formconfig.FormConfig{
		Syntax: formconfig.SyntaxV1,
		Name:   "n",
		Contents: []formconfig.FormItem{
			formconfig.Choices{ItemHeader: formconfig.ItemHeader{Type: formconfig.TypeRadio, Title: "t"}, Choices: []string{"a", "b"}},
		},
	}
	clone := cfg.Clone()
	clone.Contents[0].(formconfig.Choices).Choices[0] = "changed"

	if cfg.Contents[0].(formconfig.Choices).Choices[0] != "a" {
		t.Fatalf("clone shares choice storage with the original")
	}
}

func TestItemTypes(t *testing.T) {
	seen := map[formconfig.ItemType]bool{}
	for _, typ := range formconfig.ItemTypes() {
		if !typ.Known() {
			t.Fatalf("%q should be known", typ)
		}
		seen[typ] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected six distinct item types, got %d", len(seen))
	}
	if formconfig.ItemType("slider").Known() {
		t.Fatalf("unexpected known type")
	}
	if !formconfig.TypePulldown.HasChoices() || formconfig.TypeFile.HasChoices() {
		t.Fatalf("HasChoices mismatch")
	}
}
