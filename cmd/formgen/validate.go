package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
)

func (a *app) validateCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the form document and report the first problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := formconfig.ResolvePath(a.pathOptions())
			if err != nil {
				return err
			}

			gen := orchestrator.New()
			cfg, err := gen.Config(cmd.Context(), orchestrator.Request{Source: formconfig.SourceFromFile(path)})
			if err != nil {
				reportInvalid(a.err, path, a.cfg.Locale, err)
				return errReported
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}
			ok := paint(a.out, color.FgGreen)
			ok.Fprintf(a.out, "ok")
			fmt.Fprintf(a.out, " %s: %s (%d items)\n", path, cfg.Name, len(cfg.Contents))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the normalised form config as JSON")
	return cmd
}

func reportInvalid(w io.Writer, path, locale string, err error) {
	bad := paint(w, color.FgRed, color.Bold)
	bad.Fprintf(w, "invalid")
	fmt.Fprintf(w, " %s\n", path)

	var nf *formconfig.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(w, "  %s\n", nf.Message(locale))
		return
	}
	fmt.Fprintf(w, "  %v\n", err)
	if fe, ok := formconfig.AsFieldError(err); ok && fe.Field != "" {
		fmt.Fprintf(w, "  field: %s\n", fe.Field)
	}
}

// paint returns a color that is only applied when w is a terminal.
func paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !isTerminal(w) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
