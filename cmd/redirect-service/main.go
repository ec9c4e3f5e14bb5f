package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-shortlink/internal/app"
	"go-shortlink/internal/config"
	httpdelivery "go-shortlink/internal/redirect/delivery/http"
	"go-shortlink/internal/redirect/publisher"
	"go-shortlink/internal/redirect/repository/sqlite"
	"go-shortlink/internal/redirect/usecase"
	shareddb "go-shortlink/internal/shared/database"
	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/logger"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/pubsub"

	dapr "github.com/dapr/go-sdk/client"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadRedirect()
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

	resolutionCache, err := app.NewCache(ctx, cfg.Common)
	if err != nil {
		log.Fatal("failed to create cache", zap.Error(err))
	}
	defer resolutionCache.Close()

	sink, metricsHandler := app.NewMetrics(cfg.MetricsEnabled)
	ready := []httpx.Check{resolutionCache.Check()}

	var store usecase.LinkStore
	if cfg.LocalStorePath != "" {
		db, err := shareddb.OpenSQLiteReadOnly(cfg.LocalStorePath)
		if err != nil {
			log.Fatal("failed to open local record store", zap.Error(err))
		}
		defer db.Close()
		store = sqlite.NewLinkStore(db)
		ready = append(ready, db.PingContext)
		log.Info("local record store attached", zap.String("path", cfg.LocalStorePath))
	}

	var daprClient dapr.Client
	if cfg.Transport == config.TransportDapr || cfg.ClickTransport == config.TransportDapr {
		daprClient, err = dapr.NewClient()
		if err != nil {
			log.Fatal("failed to create dapr client", zap.Error(err))
		}
		defer daprClient.Close()
	}

	var invoker lookup.Invoker
	if daprClient != nil {
		invoker = daprClient
	}
	oracle, err := app.NewOracle(cfg.Transport, cfg.CreationServiceURL, invoker)
	if err != nil {
		log.Fatal("failed to create creation service lookup", zap.Error(err))
	}
	peer := lookup.NewBounded(oracle, cfg.PeerTimeout, log, sink)

	var clicks usecase.ClickPublisher
	switch cfg.ClickTransport {
	case config.TransportDapr:
		clicks = publisher.NewEventPublisher(pubsub.NewDaprPublisher(daprClient))
	case config.TransportNATS:
		conn, err := pubsub.Connect(cfg.NATSURL, "redirect-service")
		if err != nil {
			log.Fatal("failed to connect to nats", zap.Error(err))
		}
		defer conn.Drain()
		clicks = publisher.NewEventPublisher(pubsub.NewNATSPublisher(conn))
	default:
		clicks = publisher.NewHTTPPublisher(cfg.AnalyticsServiceURL, http.DefaultClient)
	}

	dispatcher := dispatch.New(cfg.ClickQueueSize, cfg.ClickWorkers, cfg.PeerTimeout, log, sink)
	dispatcher.Start()

	resolver := usecase.NewResolver(resolutionCache, store, peer, log,
		usecase.WithCacheTTL(cfg.CacheTTL),
		usecase.WithMetrics(sink),
	)
	tracker := usecase.NewClickTracker(dispatcher, clicks, log)
	handler := httpdelivery.NewHandler(resolver, tracker, cfg.RedirectStatus, log)
	router := httpdelivery.NewRouter(handler, log, httpdelivery.RouterConfig{
		Metrics: metricsHandler,
		Ready:   ready,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("redirect service configured",
		zap.String("creation_service", cfg.CreationServiceURL),
		zap.String("transport", cfg.Transport),
		zap.String("click_transport", cfg.ClickTransport),
		zap.Int("redirect_status", cfg.RedirectStatus),
	)
	if err := app.Serve(ctx, srv, log); err != nil {
		log.Error("redirect service stopped with error", zap.Error(err))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
	defer cancel()
	if err := dispatcher.Close(closeCtx); err != nil {
		log.Warn("pending clicks dropped", zap.Error(err))
	}
}
