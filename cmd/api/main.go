package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellness-dispatch/config"
	pgStorage "wellness-dispatch/internal/adapter/storage/postgres"
	"wellness-dispatch/pkg/logger"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:          "wellness-dispatch",
		Short:        "Webhook delivery and security event service",
		SilenceUsage: true,
	}

	var configPath string
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(workerCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var withWorker bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API together with the retry worker and sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			workerCtx, cancelWorker := context.WithCancel(context.Background())
			workerDone := make(chan struct{})
			if withWorker {
				if err := a.sweeper.Start(); err != nil {
					cancelWorker()
					return fmt.Errorf("failed to start sweeper: %w", err)
				}
				go func() {
					defer close(workerDone)
					_ = a.worker.Run(workerCtx)
				}()
			} else {
				close(workerDone)
			}

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           a.Router(cfg),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Msg("HTTP server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			log.Info().
				Str("version", version).
				Str("mode", cfg.Server.Mode).
				Str("storage", cfg.Storage.Driver).
				Bool("worker", withWorker).
				Msg("wellness-dispatch is running")

			select {
			case <-ctx.Done():
			case err := <-serveErr:
				if err != nil {
					log.Error().Err(err).Msg("HTTP server failed")
				}
			}
			log.Info().Msg("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
			}
			cancelWorker()
			<-workerDone
			if withWorker {
				a.sweeper.Stop(shutdownCtx)
			}
			a.dispatcher.Wait()

			log.Info().Msg("wellness-dispatch stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&withWorker, "with-worker", true, "run the retry worker and sweeper in this process")
	return cmd
}

func workerCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run only the retry worker and the stale-event sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ValidateStandaloneWorker(); err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.sweeper.Start(); err != nil {
				return fmt.Errorf("failed to start sweeper: %w", err)
			}
			log.Info().Str("version", version).Msg("worker started")

			err = a.worker.Run(ctx)

			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			a.sweeper.Stop(stopCtx)
			a.dispatcher.Wait()

			log.Info().Msg("worker stopped")
			return err
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			if cfg.Storage.Driver != "postgres" {
				return fmt.Errorf("migrate requires storage.driver=postgres, got %q", cfg.Storage.Driver)
			}

			ctx := cmd.Context()
			pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
			if err != nil {
				return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
			}
			defer pool.Close()

			if err := pgStorage.NewMigrator(pool, log).Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info().Msg("migrations completed successfully")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("wellness-dispatch", version)
		},
	}
}
