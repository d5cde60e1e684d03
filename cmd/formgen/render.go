package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
	"github.com/kei-mag/survey-form-test/pkg/render"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		output   string
		fragment bool
		locale   string
		preset   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form to static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := a.htmlOrchestrator(!fragment, preset)
			if err != nil {
				return err
			}
			html, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Path:          a.pathOptions(),
				RenderOptions: a.renderOptions(locale),
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = a.out.Write(html)
				return err
			}
			if err := os.WriteFile(output, html, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.log.WithField("output", output).Info("form written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "emit only the <form> element")
	cmd.Flags().StringVar(&locale, "locale", "", "message locale (overrides FORMGEN_LOCALE)")
	cmd.Flags().StringVar(&preset, "preset", "", "JSON file overriding the form name and item text")
	return cmd
}

func (a *app) htmlOrchestrator(page bool, preset string) (*orchestrator.Orchestrator, error) {
	renderer, err := vanilla.New(
		vanilla.WithPage(page),
		vanilla.WithDefaultStyles(a.cfg.Styles),
	)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}

	options := []orchestrator.Option{orchestrator.WithRegistry(registry)}
	if preset != "" {
		transformer, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS(filepath.Dir(preset)), filepath.Base(preset))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}
	return orchestrator.New(options...), nil
}
