package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/apiserver"
	"github.com/rentport/rentport/internal/common/config"
	"github.com/rentport/rentport/internal/notify"
	"github.com/rentport/rentport/internal/storage"
	"github.com/rentport/rentport/pkg/logger"
	"github.com/rentport/rentport/pkg/metrics"
	"github.com/rentport/rentport/pkg/trace"
	"github.com/rentport/rentport/pkg/version"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rentport",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rentport version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "rentport",
		Short: "Rentport API server",
		Long:  `Rentport serves the rental-management persistence API over the configured storage backend`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/rentport.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = lg.Sync()
	}()

	lg.Info("Starting rentport", zap.String("version", version.Get()))

	ctx := context.Background()

	if cfg.Trace.Enabled {
		shutdown, err := trace.InitTracing(ctx, &cfg.Trace, lg)
		if err != nil {
			lg.Fatal("failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
	}

	store, err := storage.NewStore(lg, &cfg.Storage)
	if err != nil {
		lg.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer func() {
		_ = store.Close()
	}()

	// One-time bootstrap; a no-op when the articles already exist
	if err := store.SeedSupportArticles(ctx); err != nil {
		lg.Fatal("failed to seed support articles", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	trigger := notify.NewTrigger(lg, store, &cfg.Notify)
	router := apiserver.NewRouter(lg, cfg, store, trigger, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		lg.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("forced shutdown", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
