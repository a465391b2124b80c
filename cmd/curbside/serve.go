package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/curbside/internal/api"
	"github.com/mesh-intelligence/curbside/internal/config"
	"github.com/mesh-intelligence/curbside/internal/report"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// newServeCmd creates the "serve" command running the HTTP server.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the curbside HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			if csvPath != "" {
				cfg.ReportCSVPath = csvPath
			}

			logger, err := newLogger(cfg.Development)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return run(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: $CURBSIDE_ADDR or "+types.DefaultListenAddr+")")
	cmd.Flags().StringVar(&csvPath, "csv-path", "", "report table file (default: $REPORT_CSV_PATH or "+types.DefaultReportCSVPath+")")

	return cmd
}

// newLogger builds the process logger. Development mode uses zap's console
// encoder; production emits JSON.
func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run serves HTTP until ctx is cancelled or the listener fails, then shuts
// down gracefully.
func run(ctx context.Context, cfg types.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := report.NewRepository(cfg.ReportCSVPath)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewMux(cfg, repo, logger),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("csv_path", cfg.ReportCSVPath),
			zap.Bool("admin_configured", cfg.AdminCredentials != nil))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
