package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	httpHandler "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/handler"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var noReconciler bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the merchant event consumer and the wallet reconciler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), !noReconciler)
		},
	}
	cmd.Flags().BoolVar(&noReconciler, "no-reconciler", false, "do not run the wallet reconciler in this process")
	return cmd
}

func runServe(parent context.Context, withReconciler bool) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: httpHandler.SetupRouter(a.deps),
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("addr", addr).
		Str("version", Version).
		Bool("kafka", cfg.Kafka.Enabled()).
		Msg("starting kado24 settlement service")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
		return nil
	})

	if a.consumer != nil {
		g.Go(func() error {
			if err := a.consumer.Run(gctx); err != nil {
				return fmt.Errorf("merchant event consumer: %w", err)
			}
			return nil
		})
	}

	if withReconciler {
		g.Go(func() error { return a.reconciler.Run(gctx) })
	}

	err = g.Wait()
	log.Info().Msg("server exited")
	return err
}
