package formconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultPathEnvKey names the variable that overrides the config path.
	DefaultPathEnvKey = "FORM_CONFIG_PATH"
	// DefaultFileName is used when no override is present.
	DefaultFileName = "form.yml"
)

// PathOptions carries everything ResolvePath needs. The zero value resolves
// through the process environment and working directory.
type PathOptions struct {
	// Explicit, when non-empty, is returned as-is.
	Explicit string
	// EnvKey names the override variable (DefaultPathEnvKey when empty).
	EnvKey string
	// LookupEnv reads the override (os.LookupEnv when nil).
	LookupEnv func(key string) (string, bool)
	// WorkDir anchors relative overrides and the default file (os.Getwd
	// when empty).
	WorkDir string
	// DefaultFile is the fallback file name (DefaultFileName when empty).
	DefaultFile string
}

// ResolvePath determines which file to load:
//   - an explicit path wins and is used unchanged;
//   - otherwise a non-empty override is used, absolute as-is, relative joined
//     onto the working directory;
//   - otherwise the default file name inside the working directory.
func ResolvePath(opts PathOptions) (string, error) {
	if explicit := strings.TrimSpace(opts.Explicit); explicit != "" {
		return explicit, nil
	}

	key := opts.EnvKey
	if key == "" {
		key = DefaultPathEnvKey
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	override, _ := lookup(key)
	if override != "" && filepath.IsAbs(override) {
		return override, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("formconfig: resolve working directory: %w", err)
		}
		workDir = wd
	}

	if override != "" {
		return filepath.Join(workDir, override), nil
	}

	name := opts.DefaultFile
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(workDir, name), nil
}
