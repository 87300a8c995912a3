package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/render"
)

var (
	renderOutput string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the mounted page",
	Long: `Mount the form and both project lists and print the result.

Formats:
  html      full page layout (default)
  fragment  only the mounted components
  json      page state: form values and list ids`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", render.FormatHTML, "output format")
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	formats := render.NewDefaultRegistry(a.renderer)
	renderer, err := formats.Get(strings.TrimSpace(renderFormat))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(formats.List(), ", "))
	}

	page, err := projects.Mount(a.doc, a.formOptions()...)
	if err != nil {
		return a.fatalOnSetup(err)
	}

	data, err := renderer.Render(cmd.Context(), page, render.Options{Title: a.cfg.Templates.Title})
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return fmt.Errorf("render: create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	a.logger.Debug().Str("format", renderer.Name()).Str("output", renderOutput).Msg("page rendered")
	return nil
}
