package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/prompt"
)

var promptAttempts int

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill the project form from the terminal",
	Long: `Ask for title, description and people until the form accepts them.
Invalid input shows the configured notice and the previous answers are
offered again. Ctrl+C aborts.`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().IntVar(&promptAttempts, "attempts", 0, "give up after this many invalid submissions (0 = unlimited)")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt)
	defer stop()

	driver := prompt.NewSurveyDriver()
	opts := append(a.formOptions(), projects.WithNotifier(prompt.NewNotifier(ctx, driver)))
	page, err := projects.Mount(a.doc, opts...)
	if err != nil {
		return a.fatalOnSetup(err)
	}

	session, err := prompt.NewSession(page.Form(), driver,
		prompt.WithMaxAttempts(promptAttempts),
		prompt.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			a.logger.Info().Msg("prompt aborted")
			return nil
		}
		return err
	}
	return nil
}
