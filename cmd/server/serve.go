package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"standup-api-backend/internal/api/routes"
	"standup-api-backend/internal/cache"
	"standup-api-backend/internal/database"
	"standup-api-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logrus.WithError(err).Warn("failed to close database")
			}
		}()

		ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := cache.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
		if closer, ok := store.(io.Closer); ok {
			defer closer.Close() //nolint:errcheck
		}

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           routes.SetupRoutes(db, cfg, store),
			ReadHeaderTimeout: 10 * time.Second,
		}

		var stats *metrics.StatsServer
		if cfg.MetricsEnabled {
			stats = metrics.NewStatsServer(":" + cfg.MetricsPort)
		}

		errg, ctx := errgroup.WithContext(ctx)
		errg.Go(func() error {
			logrus.Infof("Starting server on port %s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		if stats != nil {
			errg.Go(func() error {
				logrus.Infof("Starting metrics server on port %s", cfg.MetricsPort)
				if err := stats.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("metrics server: %w", err)
				}
				return nil
			})
		}
		errg.Go(func() error {
			<-ctx.Done()
			logrus.Info("Shutting down")

			sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			err := srv.Shutdown(sctx)
			if stats != nil {
				err = errors.Join(err, stats.Shutdown(sctx))
			}
			return err
		})

		return errg.Wait()
	},
}
