package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-shortlink/internal/analytics/consumer"
	"go-shortlink/internal/analytics/database"
	httpdelivery "go-shortlink/internal/analytics/delivery/http"
	"go-shortlink/internal/analytics/enrichment"
	"go-shortlink/internal/analytics/repository/sqlite"
	"go-shortlink/internal/analytics/usecase"
	"go-shortlink/internal/app"
	"go-shortlink/internal/config"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/logger"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/pubsub"

	dapr "github.com/dapr/go-sdk/client"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadAnalytics()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		log.Fatal("failed to create data directory", zap.Error(err))
	}

	// Separate from the Record Store; holds the link replica and click log.
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	log.Info("analytics database initialized", zap.String("path", cfg.DatabasePath))

	var geoIP usecase.GeoIPResolver = enrichment.NoGeoIP{}
	if cfg.GeoIPDBPath != "" {
		resolver, err := enrichment.OpenGeoIP(cfg.GeoIPDBPath)
		if err != nil {
			log.Warn("GeoIP database not available, country resolution disabled",
				zap.String("path", cfg.GeoIPDBPath),
				zap.Error(err),
			)
		} else {
			defer resolver.Close()
			geoIP = resolver
			log.Info("GeoIP database loaded", zap.String("path", cfg.GeoIPDBPath))
		}
	}

	sink, metricsHandler := app.NewMetrics(cfg.MetricsEnabled)

	var invoker lookup.Invoker
	if cfg.Transport == config.TransportDapr {
		client, err := dapr.NewClient()
		if err != nil {
			log.Fatal("failed to create dapr client", zap.Error(err))
		}
		defer client.Close()
		invoker = client
	}
	oracle, err := app.NewOracle(cfg.Transport, cfg.CreationServiceURL, invoker)
	if err != nil {
		log.Fatal("failed to create creation service lookup", zap.Error(err))
	}

	service := usecase.NewAnalyticsService(
		sqlite.NewClickRepository(db),
		sqlite.NewLinkRepository(db),
		geoIP,
		enrichment.NewDeviceDetector(),
		enrichment.NewRefererClassifier(),
		log,
		usecase.WithPeer(lookup.NewBounded(oracle, cfg.PeerTimeout, log, sink)),
		usecase.WithMetrics(sink),
	)
	events := consumer.NewEventConsumer(service, log)

	if cfg.NATSURL != "" {
		conn, err := pubsub.Connect(cfg.NATSURL, "analytics-service")
		if err != nil {
			log.Fatal("failed to connect to nats", zap.Error(err))
		}
		defer conn.Drain()
		if _, err := events.SubscribeNATS(conn); err != nil {
			log.Fatal("failed to subscribe to nats subjects", zap.Error(err))
		}
		log.Info("consuming events from nats", zap.String("url", cfg.NATSURL))
	}

	handler := httpdelivery.NewHandler(service, log)
	router := httpdelivery.NewRouter(handler, log, httpdelivery.RouterConfig{
		Events:  httpdelivery.NewEventHandler(events, log),
		Metrics: metricsHandler,
		Ready:   []httpx.Check{db.PingContext},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := app.Serve(ctx, srv, log); err != nil {
		log.Error("analytics service stopped with error", zap.Error(err))
	}
}
