package vanilla_test

import (
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
	"github.com/kei-mag/survey-form-test/pkg/testsupport"
)

const pageDoc = "syntax: v1\nname: お客様アンケート\ncontents:\n  - type: oneline-text\n    title: Name\n"

func TestRenderer_Page(t *testing.T) {
	cfg := testsupport.MustParseFormConfig(t, pageDoc)
	r, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(testsupport.Context(), cfg, render.RenderOptions{IDs: render.NewSequenceIDScope("p")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="ja">`,
		"<title>お客様アンケート</title>",
		`<h1 class="sf-title">お客様アンケート</h1>`,
		`<form class="sf-form"><section class="sf-section">`,
		`id="p-0-title"`,
		".sf-section {",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderer_PageEscapesTitle(t *testing.T) {
	cfg := testsupport.MustParseFormConfig(t, "syntax: v1\nname: \"<script>x</script>\"\ncontents: []\n")
	r, err := vanilla.New(vanilla.WithDefaultStyles(false))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(testsupport.Context(), cfg, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("title must be escaped: %s", out)
	}
	if strings.Contains(string(out), "<style>") {
		t.Fatalf("default styles disabled but inlined: %s", out)
	}
}

func TestRenderer_PageTheme(t *testing.T) {
	cfg := testsupport.MustParseFormConfig(t, pageDoc)
	r, err := vanilla.New(vanilla.WithDefaultStyles(false), vanilla.WithStylesheet("surveyform.css"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(testsupport.Context(), cfg, render.RenderOptions{
		Locale: "en",
		Theme: &theme.RendererConfig{
			Theme:   "garden",
			Variant: "dark",
			CSSVars: map[string]string{
				"--sf-accent": "#0f766e",
				"--evil":      "red;}</style><script>",
			},
			AssetURL: func(name string) string { return "/static/" + name },
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		`<html lang="en" data-theme="garden" data-theme-variant="dark">`,
		`<link rel="stylesheet" href="/static/surveyform.css">`,
		"--sf-accent: #0f766e;",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
	if strings.Contains(page, "--evil") {
		t.Fatalf("unsafe css var must be dropped:\n%s", page)
	}
}

func TestRenderer_ThemePartialOverridesPage(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tmpl": {Data: []byte("default")},
		"themes/minimal.tmpl": {Data: []byte("<main>{{ title }}|{{ form|safe }}</main>")},
	}
	cfg := testsupport.MustParseFormConfig(t, "syntax: v1\nname: Mini\ncontents: []\n")
	r, err := vanilla.New(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(testsupport.Context(), cfg, render.RenderOptions{
		Theme: &theme.RendererConfig{Partials: map[string]string{vanilla.PagePartialKey: "themes/minimal.tmpl"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != `<main>Mini|<form class="sf-form"></form></main>` {
		t.Fatalf("unexpected page %q", got)
	}
}

func TestAssetsFS(t *testing.T) {
	fsys := vanilla.AssetsFS()
	data, err := fsys.Open(vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("open stylesheet: %v", err)
	}
	defer data.Close()
	info, err := data.Stat()
	if err != nil || info.Size() == 0 {
		t.Fatalf("stylesheet should not be empty: %v", err)
	}
}
