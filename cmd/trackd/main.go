package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/cyclone-track-service/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/cyclone-track-service/internal/adapter/kafka"
	"github.com/couchcryptid/cyclone-track-service/internal/adapter/noaa"
	"github.com/couchcryptid/cyclone-track-service/internal/config"
	"github.com/couchcryptid/cyclone-track-service/internal/loader"
	"github.com/couchcryptid/cyclone-track-service/internal/observability"
	"github.com/couchcryptid/cyclone-track-service/internal/service"
	"github.com/couchcryptid/cyclone-track-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []service.Option

	// Durable track store (feature-flagged via STORE_PATH).
	var trackStore *store.Store
	if cfg.StorePath != "" {
		trackStore, err = store.Open(cfg.StorePath)
		if err != nil {
			logger.Error("failed to open track store", "path", cfg.StorePath, "error", err)
			os.Exit(1)
		}
		opts = append(opts, service.WithStore(trackStore))
		logger.Info("track store enabled", "path", cfg.StorePath)
	} else {
		logger.Info("track store disabled")
	}

	// Kafka sink (feature-flagged via KAFKA_ENABLED).
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts = append(opts, service.WithPublisher(writer))
		logger.Info("kafka sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka sink disabled")
	}

	svc := service.New(logger, metrics, cfg.CacheSize, opts...)

	if err := loadDatasets(ctx, cfg, svc, logger); err != nil {
		logger.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, svc, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	metrics.ServiceUp.Set(1)

	<-ctx.Done()
	logger.Info("shutting down")
	metrics.ServiceUp.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if trackStore != nil {
		if err := trackStore.Close(); err != nil {
			logger.Error("track store close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// loadDatasets parses every manifest entry and registers it with the service.
func loadDatasets(ctx context.Context, cfg *config.Config, svc *service.Service, logger *slog.Logger) error {
	reg, err := config.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}

	client := noaa.NewClient(cfg.FetchTimeout, logger)

	for _, ds := range reg.Datasets {
		var data []byte
		switch {
		case ds.Path != "":
			data, err = os.ReadFile(ds.Path)
			if err != nil {
				return fmt.Errorf("dataset %q: %w", ds.Name, err)
			}
		default:
			data, err = client.Fetch(ctx, ds.URL)
			if err != nil {
				return fmt.Errorf("dataset %q: %w", ds.Name, err)
			}
		}

		src, err := loader.Parse(ds.Format, data)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", ds.Name, err)
		}

		svc.RegisterDataset(ds.Name, src, ds.Mode())
	}

	return nil
}
