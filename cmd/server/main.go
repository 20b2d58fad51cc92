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
	"go.uber.org/zap/zapcore"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tlcpharma/dashboard-backend/internal/api"
	"github.com/tlcpharma/dashboard-backend/internal/config"
	"github.com/tlcpharma/dashboard-backend/internal/provider"
	"github.com/tlcpharma/dashboard-backend/internal/service"
)

// demoPharmacyID is the pharmacy seeded when running on the in-memory
// provider.
const demoPharmacyID = "demo"

var (
	rootCmd = &cobra.Command{
		Use:   "dashboard-backend",
		Short: "Pharmacy operations dashboard backend",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the dashboard backend version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version = "dev"
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard-backend: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	prov, err := newProvider(cfg, log)
	if err != nil {
		return err
	}

	svc := service.NewDashboardService(prov, log)
	server := api.NewServer(svc, cfg.HTTP, log)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: h2c.NewHandler(server.Handler(), &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("port", cfg.HTTP.Port), zap.String("provider", cfg.Provider.Mode))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func newProvider(cfg *config.Config, log *zap.Logger) (provider.Provider, error) {
	switch cfg.Provider.Mode {
	case config.ProviderHTTP:
		retry := provider.DefaultRetryConfig
		retry.MaxRetries = cfg.Upstream.MaxRetries
		if cfg.Upstream.RetryDelay > 0 {
			retry.InitialDelay = cfg.Upstream.RetryDelay
		}
		if cfg.Upstream.MaxDelay > 0 {
			retry.MaxDelay = cfg.Upstream.MaxDelay
		}
		return provider.NewHTTPProvider(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, retry, log), nil
	case config.ProviderMemory:
		mem := provider.NewMemoryProvider()
		end := time.Now().UTC().AddDate(0, 0, -1)
		provider.SeedDemoData(mem, demoPharmacyID, end, cfg.Provider.DemoDays)
		log.Info("seeded in-memory provider",
			zap.String("pharmacy", demoPharmacyID),
			zap.Int("days", cfg.Provider.DemoDays))
		return mem, nil
	default:
		return nil, fmt.Errorf("unknown provider mode %q", cfg.Provider.Mode)
	}
}
