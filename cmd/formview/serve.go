package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project form over HTTP",
	Long: `Serve the project form over HTTP.

Routes:
  GET  /         render the page
  POST /         submit title, description and people
  GET  /metrics  Prometheus metrics
  GET  /healthz  liveness

Environment variables:
  FORMVIEW_SERVER_ADDR     - Listen address (default: :8080)
  FORMVIEW_LOG_LEVEL       - Log level: debug, info, warn, error
  FORMVIEW_LOG_FORMAT      - Log format: json or console
  FORMVIEW_TEMPLATES_DIR   - Alternate template directory
  FORMVIEW_FORM_NOTICE     - Notice shown for invalid input`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv, err := server.New(server.Config{
		Addr:            addr,
		ReadTimeout:     a.cfg.Server.ReadTimeout,
		WriteTimeout:    a.cfg.Server.WriteTimeout,
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
		Title:           a.cfg.Templates.Title,
		Renderer:        a.renderer,
		Document:        a.doc,
		Form:            a.formOptions(),
		Logger:          a.logger,
	})
	if err != nil {
		return a.fatalOnSetup(err)
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
