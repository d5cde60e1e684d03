package main

import (
	"errors"
	"io"

	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kei-mag/survey-form-test/internal/config"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/tui"
)

// errReported marks failures already printed for the user.
var errReported = errors.New("formgen: reported")

type app struct {
	cfgFile  string
	envFiles []string
	formPath string

	cfg config.Config
	log *logrus.Logger
	out io.Writer
	err io.Writer

	// tuiOptions are prepended to the fill renderer options; tests use it
	// to swap the prompt driver.
	tuiOptions []tui.Option
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, err: errOut}
	return a.command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "formgen",
		Short: "Render YAML survey definitions as accessible HTML forms",
		Long: `formgen loads a survey form document (syntax: v1) and renders it.

Configuration variables (environment, .env, or --config file):
  - FORM_CONFIG_PATH: form document path (default: ./form.yml).
  - FORMGEN_ADDR: listen address for serve (default: ":8080").
  - FORMGEN_LOCALE: message locale, ja or en (default: ja).
  - FORMGEN_LOG_LEVEL: logrus level (default: info).
  - FORMGEN_STYLES: inline the default stylesheet (default: true).
  - FORMGEN_THEME, FORMGEN_THEME_VARIANT: data-theme attributes on the page.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}
	root.SetOut(a.out)
	root.SetErr(a.err)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json, or toml)")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to read (default: .env when present)")
	flags.StringVarP(&a.formPath, "form", "f", "", "form document (default: $FORM_CONFIG_PATH or ./form.yml)")

	root.AddCommand(
		a.renderCommand(),
		a.serveCommand(),
		a.validateCommand(),
		a.fillCommand(),
	)
	return root
}

func (a *app) init(*cobra.Command, []string) error {
	cfg, err := config.Load(config.Options{ConfigFile: a.cfgFile, EnvFiles: a.envFiles})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	a.log = logrus.New()
	a.log.SetOutput(a.err)
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.WithFields(logrus.Fields{
		"locale": cfg.Locale,
		"styles": cfg.Styles,
		"theme":  cfg.Theme,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) pathOptions() formconfig.PathOptions {
	return a.cfg.PathOptions(a.formPath)
}

func (a *app) renderOptions(locale string) render.RenderOptions {
	if locale == "" {
		locale = a.cfg.Locale
	}
	opts := render.RenderOptions{Locale: locale}
	if a.cfg.Theme != "" || a.cfg.ThemeVariant != "" {
		opts.Theme = &theme.RendererConfig{
			Theme:   a.cfg.Theme,
			Variant: a.cfg.ThemeVariant,
		}
	}
	return opts
}
