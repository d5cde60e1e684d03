package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/tui"
)

func (a *app) fillCommand() *cobra.Command {
	var (
		format string
		locale string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Answer the form interactively in the terminal and print the answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			options := append([]tui.Option{}, a.tuiOptions...)
			renderer, err := tui.New(append(options, tui.WithOutputFormat(outputFormat))...)
			if err != nil {
				return err
			}
			registry := render.NewRegistry()
			if err := registry.Register(renderer); err != nil {
				return err
			}

			gen := orchestrator.New(orchestrator.WithRegistry(registry))
			answers, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Path:          a.pathOptions(),
				Renderer:      tui.Name,
				RenderOptions: a.renderOptions(locale),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, string(answers))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(tui.OutputFormatJSON), "answer format: json, form, or pretty")
	cmd.Flags().StringVar(&locale, "locale", "", "message locale (overrides FORMGEN_LOCALE)")
	return cmd
}

func parseOutputFormat(raw string) (tui.OutputFormat, error) {
	switch format := tui.OutputFormat(raw); format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q", raw)
	}
}
