package render_test

import (
	"context"
	"testing"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, formconfig.FormConfig, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("vanilla"))
	reg.MustRegister(namedRenderer("tui"))

	if err := reg.Register(namedRenderer("vanilla")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}

	got, err := reg.Resolve("")
	if err != nil || got.Name() != "vanilla" {
		t.Fatalf("first registered renderer should be default, got %v %v", got, err)
	}
	if err := reg.SetDefault("tui"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if got, _ := reg.Resolve(""); got.Name() != "tui" {
		t.Fatalf("default not updated: %s", got.Name())
	}
	if err := reg.SetDefault("missing"); err == nil {
		t.Fatalf("expected error for unknown default")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected lookup error")
	}
	if names := reg.List(); len(names) != 2 || names[0] != "tui" {
		t.Fatalf("unexpected list %v", names)
	}
}

func TestRegistry_EmptyResolve(t *testing.T) {
	if _, err := render.NewRegistry().Resolve(""); err == nil {
		t.Fatalf("expected error from empty registry")
	}
}
