// Package config loads application settings for the formgen command from
// the environment, optional .env files, and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

const (
	KeyConfigPath   = formconfig.DefaultPathEnvKey
	KeyAddr         = "FORMGEN_ADDR"
	KeyLocale       = "FORMGEN_LOCALE"
	KeyLogLevel     = "FORMGEN_LOG_LEVEL"
	KeyStyles       = "FORMGEN_STYLES"
	KeyTheme        = "FORMGEN_THEME"
	KeyThemeVariant = "FORMGEN_THEME_VARIANT"
)

const defaultEnvFile = ".env"

// Config is the resolved application configuration.
type Config struct {
	// ConfigPath is the form document override; empty means form.yml in the
	// working directory.
	ConfigPath   string
	Addr         string
	Locale       string
	LogLevel     string
	Styles       bool
	Theme        string
	ThemeVariant string
}

// Options controls where settings are read from.
type Options struct {
	// ConfigFile is an optional viper-readable file (yaml, json, toml).
	ConfigFile string
	// EnvFiles are dotenv files; values never override the real environment.
	// Defaults to ".env", which may be absent.
	EnvFiles []string
}

// Load resolves the configuration. Precedence, highest first: process
// environment, config file, dotenv files, defaults.
func Load(opts Options) (Config, error) {
	v := viper.New()
	setDefaults(v)

	envFiles := opts.EnvFiles
	explicitEnv := len(envFiles) > 0
	if !explicitEnv {
		envFiles = []string{defaultEnvFile}
	}
	for _, file := range envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			if !explicitEnv && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read env file %s: %w", file, err)
		}
		for key, value := range values {
			v.SetDefault(key, value)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	}

	v.AutomaticEnv()

	cfg := Config{
		ConfigPath:   strings.TrimSpace(v.GetString(KeyConfigPath)),
		Addr:         v.GetString(KeyAddr),
		Locale:       v.GetString(KeyLocale),
		LogLevel:     v.GetString(KeyLogLevel),
		Styles:       v.GetBool(KeyStyles),
		Theme:        v.GetString(KeyTheme),
		ThemeVariant: v.GetString(KeyThemeVariant),
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyConfigPath, "")
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLocale, render.DefaultLocale)
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyStyles, true)
	v.SetDefault(KeyTheme, "")
	v.SetDefault(KeyThemeVariant, "")
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	return level, nil
}

// PathOptions returns path resolution settings that honour ConfigPath as the
// override, whichever source it came from.
func (c Config) PathOptions(explicit string) formconfig.PathOptions {
	override := c.ConfigPath
	return formconfig.PathOptions{
		Explicit: explicit,
		LookupEnv: func(key string) (string, bool) {
			if key == KeyConfigPath {
				return override, override != ""
			}
			return "", false
		},
	}
}
