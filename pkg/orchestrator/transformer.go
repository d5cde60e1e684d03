package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// Transformer adjusts a loaded FormConfig before rendering. It receives a
// private copy; the caller's config is never touched.
type Transformer interface {
	Transform(ctx context.Context, form *formconfig.FormConfig) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *formconfig.FormConfig) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *formconfig.FormConfig) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// JSONPresetTransformer applies display text overrides loaded from JSON,
// keyed by item index:
//
//	{
//	  "name": "Customer survey",
//	  "items": {
//	    "0": {"title": "Your name", "description": "As printed on the card"}
//	  }
//	}
//
// Empty strings leave the original value in place, so a title can never be
// blanked out.
type JSONPresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Name  string                `json:"name"`
	Items map[string]presetItem `json:"items"`
}

type presetItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	for key := range document.Items {
		if _, err := strconv.Atoi(key); err != nil {
			return nil, fmt.Errorf("json preset transformer: item key %q is not an index", key)
		}
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a preset document from fsys.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the overrides onto form.
func (t *JSONPresetTransformer) Transform(ctx context.Context, form *formconfig.FormConfig) error {
	if form == nil {
		return errors.New("json preset transformer: form config is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if name := strings.TrimSpace(t.document.Name); name != "" {
		form.Name = t.document.Name
	}
	for key, patch := range t.document.Items {
		index, _ := strconv.Atoi(key)
		if index < 0 || index >= len(form.Contents) {
			return fmt.Errorf("json preset transformer: item %d out of range", index)
		}
		form.Contents[index] = applyItemPatch(form.Contents[index], patch)
	}
	return nil
}

func applyItemPatch(item formconfig.FormItem, patch presetItem) formconfig.FormItem {
	header := item.Header()
	if strings.TrimSpace(patch.Title) != "" {
		header.Title = patch.Title
	}
	if patch.Description != "" {
		header.Description = patch.Description
	}
	return withHeader(item, header)
}

func withHeader(item formconfig.FormItem, header formconfig.ItemHeader) formconfig.FormItem {
	switch v := item.(type) {
	case formconfig.OneLineText:
		v.ItemHeader = header
		return v
	case formconfig.MultiLineText:
		v.ItemHeader = header
		return v
	case formconfig.Choices:
		v.ItemHeader = header
		return v
	case formconfig.File:
		v.ItemHeader = header
		return v
	default:
		return item
	}
}
