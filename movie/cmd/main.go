package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mkvy/movies-gateway/movie/internal/controller/movie"
	metadatagateway "github.com/mkvy/movies-gateway/movie/internal/gateway/metadata/http"
	httphandler "github.com/mkvy/movies-gateway/movie/internal/handler/http"
	"github.com/mkvy/movies-gateway/pkg/logging"
	"github.com/mkvy/movies-gateway/pkg/tracing"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const serviceName = "movie"

func main() {
	var configPath, envFile string
	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Serve the movie pages and the movie metadata API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, envFile)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "./movie/configs/base.yaml", "path to the YAML configuration")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file holding "+apiKeyEnv)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, serviceName)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("Starting the movie service", zap.Int("port", cfg.API.Port),
		zap.String("primaryLanguage", cfg.TMDB.PrimaryLanguage), zap.String("fallbackLanguage", cfg.TMDB.FallbackLanguage))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Jaeger.URL != "" {
		tp, err := tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName)
		if err != nil {
			logger.Fatal("Failed to initialize Jaeger provider", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down Jaeger provider", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	scope := tally.NoopScope
	if cfg.Prometheus.MetricsPort > 0 {
		reporter := prometheus.NewReporter(prometheus.Options{})
		var closer io.Closer
		scope, closer = tally.NewRootScope(tally.ScopeOptions{
			Tags:           map[string]string{"service": serviceName},
			CachedReporter: reporter,
			Separator:      "_",
		}, 10*time.Second)
		defer closer.Close()
		mux := http.NewServeMux()
		mux.Handle("/metrics", reporter.HTTPHandler())
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Prometheus.MetricsPort), mux); err != nil {
				logger.Error("Failed to start the metrics handler", zap.Error(err))
			}
		}()
		scope.Counter("service_started").Inc(1)
	}

	metadataGateway := metadatagateway.New(metadatagateway.Config{
		BaseURL: cfg.TMDB.BaseURL,
		APIKey:  cfg.TMDB.APIKey,
		Timeout: cfg.TMDB.Timeout,
	}, logger, scope)
	ctrl := movie.New(metadataGateway, movie.Locales{
		Primary:  cfg.TMDB.PrimaryLanguage,
		Fallback: cfg.TMDB.FallbackLanguage,
	}, logger)
	pages := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.Static.Dir))
	h := httphandler.New(ctrl, pages, logger)
	var limiter *httphandler.Limiter
	if cfg.RateLimit.Limit > 0 {
		limiter = httphandler.NewLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Burst)
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.Port),
		Handler:           httphandler.NewRouter(h, limiter, logger),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		logger.Info("Attempting graceful shutdown", zap.String("signal", s.String()))
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the HTTP server", zap.Error(err))
		}
		cancel()
		logger.Info("Gracefully stopped the HTTP server")
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	wg.Wait()
	return nil
}
