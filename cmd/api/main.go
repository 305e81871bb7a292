package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/palindrome-service/internal/api/http"
	"github.com/spec-kit/palindrome-service/internal/api/http/handlers"
	"github.com/spec-kit/palindrome-service/internal/config"
	"github.com/spec-kit/palindrome-service/internal/observability"
	"github.com/spec-kit/palindrome-service/internal/requestlog"
	"github.com/spec-kit/palindrome-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	requestLog := requestlog.New(
		requestlog.WithMaxEntries(cfg.Palindrome.MaxLogEntries),
		requestlog.WithEvictionHook(metrics.RecordListEviction),
	)
	if err := metrics.TrackListSize(requestLog); err != nil {
		logger.Fatal("failed to register list size gauge", zap.Error(err))
	}
	if requestLog.Capacity() == 0 {
		logger.Warn("request log is unbounded; set REQUEST_LOG_MAX_ENTRIES to cap memory use")
	}

	palindromeService := service.NewPalindromeService(service.PalindromeDependencies{
		Log:     requestLog,
		Metrics: metrics,
		Logger:  logger.Named("palindrome"),
	})

	routes := httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, palindromeService.LogSize),
		Palindrome: handlers.NewPalindromeHandler(palindromeService, metrics, cfg.Palindrome.MaxInputBytes),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = metrics
		routes.MetricsPath = cfg.Metrics.Path
	}

	app := httptransport.NewApp(cfg.App, logger, metrics, routes)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
