package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formview/internal/config"
	"github.com/goliatone/go-formview/internal/logging"
	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formview/pkg/view"
)

// app is what every subcommand needs: config, logger and the parsed
// component document.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	renderer *gotemplate.Engine
	doc      *view.Document
}

func loadApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	renderer, err := projects.NewRenderer(cfg.Templates.Dir)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	doc, err := projects.LoadDocument(renderer, projects.DocumentData{Title: cfg.Templates.Title}, cfg.Templates.SanitizeEnabled())
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("config", cfgFile).
		Str("templates", cfg.Templates.Dir).
		Bool("sanitize", cfg.Templates.SanitizeEnabled()).
		Msg("templates loaded")

	return &app{cfg: cfg, logger: logger, renderer: renderer, doc: doc}, nil
}

// formOptions maps the form section of the config onto form options.
func (a *app) formOptions() []projects.Option {
	return []projects.Option{
		projects.WithRules(a.cfg.Form.Rules.FormRules()),
		projects.WithNotice(a.cfg.Form.Notice),
		projects.WithLogger(a.logger),
	}
}

// fatalOnSetup aborts on a setup fault. Anything else is returned to cobra.
func (a *app) fatalOnSetup(err error) error {
	if view.IsSetupFault(err) {
		a.logger.Fatal().Err(err).Msg("setup fault")
	}
	return err
}
