package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-shortlink/internal/app"
	"go-shortlink/internal/config"
	"go-shortlink/internal/creation/database"
	httpdelivery "go-shortlink/internal/creation/delivery/http"
	"go-shortlink/internal/creation/publisher"
	"go-shortlink/internal/creation/repository/postgres"
	"go-shortlink/internal/creation/repository/sqlite"
	"go-shortlink/internal/creation/usecase"
	shareddb "go-shortlink/internal/shared/database"
	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/logger"
	"go-shortlink/internal/shared/middleware"
	"go-shortlink/internal/shared/pubsub"

	dapr "github.com/dapr/go-sdk/client"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadCreation()
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

	if cfg.StoreDriver == shareddb.DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			log.Fatal("failed to create data directory", zap.Error(err))
		}
	}

	db, err := database.Open(cfg.StoreDriver, cfg.DatabasePath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	log.Info("record store initialized", zap.String("driver", cfg.StoreDriver))

	var repo usecase.LinkRepository
	if cfg.StoreDriver == shareddb.DialectPostgres {
		repo = postgres.NewLinkRepository(db)
	} else {
		repo = sqlite.NewLinkRepository(db)
	}

	resolutionCache, err := app.NewCache(ctx, cfg.Common)
	if err != nil {
		log.Fatal("failed to create cache", zap.Error(err))
	}
	defer resolutionCache.Close()

	sink, metricsHandler := app.NewMetrics(cfg.MetricsEnabled)

	filter := usecase.NewCodeFilter(0, 0)
	warmed, err := filter.Warm(ctx, repo)
	if err != nil {
		log.Fatal("failed to warm code filter", zap.Error(err))
	}
	log.Info("code filter warmed", zap.Int("codes", warmed))

	opts := []usecase.Option{
		usecase.WithCodeFilter(filter),
		usecase.WithCacheTTL(cfg.CacheTTL),
		usecase.WithMetrics(sink),
	}

	var announcer pubsub.Publisher
	switch cfg.Transport {
	case config.TransportHTTP:
		announcer = pubsub.NewHTTPPublisher(cfg.AnalyticsServiceURL, &http.Client{Timeout: cfg.PeerTimeout})
	case config.TransportDapr:
		client, err := dapr.NewClient()
		if err != nil {
			log.Fatal("failed to create dapr client", zap.Error(err))
		}
		defer client.Close()
		announcer = pubsub.NewDaprPublisher(client)
	case config.TransportNATS:
		conn, err := pubsub.Connect(cfg.NATSURL, "creation-service")
		if err != nil {
			log.Fatal("failed to connect to nats", zap.Error(err))
		}
		defer conn.Drain()
		announcer = pubsub.NewNATSPublisher(conn)
	}

	var dispatcher *dispatch.Dispatcher
	if announcer != nil {
		dispatcher = dispatch.New(0, 2, cfg.PeerTimeout, log, sink)
		dispatcher.Start()
		opts = append(opts, usecase.WithPublisher(publisher.NewLinkPublisher(announcer), dispatcher))
		log.Info("link announcements enabled", zap.String("transport", cfg.Transport))
	}

	service := usecase.NewLinkService(repo, resolutionCache, log, cfg.BaseURL, opts...)
	handler := httpdelivery.NewHandler(service, log)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	router := httpdelivery.NewRouter(handler, log, httpdelivery.RouterConfig{
		RateLimiter: rateLimiter,
		Metrics:     metricsHandler,
		Ready:       []httpx.Check{db.PingContext, resolutionCache.Check()},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("creation service configured",
		zap.String("base_url", cfg.BaseURL),
		zap.Int("rate_limit", cfg.RateLimit),
		zap.String("cache", cfg.CacheDriver),
	)
	if err := app.Serve(ctx, srv, log); err != nil {
		log.Error("creation service stopped with error", zap.Error(err))
	}

	if dispatcher != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
		defer cancel()
		if err := dispatcher.Close(closeCtx); err != nil {
			log.Warn("pending link announcements dropped", zap.Error(err))
		}
	}
}
