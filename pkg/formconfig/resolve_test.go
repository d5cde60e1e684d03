package formconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestResolvePath(t *testing.T) {
	work := filepath.Join(string(filepath.Separator), "srv", "app")
	abs := filepath.Join(string(filepath.Separator), "etc", "forms", "custom.yml")

	tests := []struct {
		name string
		opts formconfig.PathOptions
		want string
	}{
		{
			name: "default file in working directory",
			opts: formconfig.PathOptions{WorkDir: work, LookupEnv: envMap(nil)},
			want: filepath.Join(work, "form.yml"),
		},
		{
			name: "empty override ignored",
			opts: formconfig.PathOptions{WorkDir: work, LookupEnv: envMap(map[string]string{"FORM_CONFIG_PATH": ""})},
			want: filepath.Join(work, "form.yml"),
		},
		{
			name: "relative override joined",
			opts: formconfig.PathOptions{WorkDir: work, LookupEnv: envMap(map[string]string{"FORM_CONFIG_PATH": "forms/other.yml"})},
			want: filepath.Join(work, "forms", "other.yml"),
		},
		{
			name: "absolute override used as-is",
			opts: formconfig.PathOptions{WorkDir: work, LookupEnv: envMap(map[string]string{"FORM_CONFIG_PATH": abs})},
			want: abs,
		},
		{
			name: "explicit wins over override",
			opts: formconfig.PathOptions{Explicit: "given.yml", WorkDir: work, LookupEnv: envMap(map[string]string{"FORM_CONFIG_PATH": abs})},
			want: "given.yml",
		},
		{
			name: "custom env key",
			opts: formconfig.PathOptions{EnvKey: "SURVEY_FORM", WorkDir: work, LookupEnv: envMap(map[string]string{"SURVEY_FORM": "s.yml", "FORM_CONFIG_PATH": "ignored.yml"})},
			want: filepath.Join(work, "s.yml"),
		},
		{
			name: "custom default file",
			opts: formconfig.PathOptions{DefaultFile: "survey.yaml", WorkDir: work, LookupEnv: envMap(nil)},
			want: filepath.Join(work, "survey.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formconfig.ResolvePath(tt.opts)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolvePath_ProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(formconfig.DefaultPathEnvKey, "from-env.yml")

	got, err := formconfig.ResolvePath(formconfig.PathOptions{WorkDir: dir})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(dir, "from-env.yml"); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
