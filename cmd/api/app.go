package main

import (
	"context"
	"fmt"
	"net/http"

	"wellness-dispatch/config"
	httpHandler "wellness-dispatch/internal/adapter/http/handler"
	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/adapter/storage/memory"
	pgStorage "wellness-dispatch/internal/adapter/storage/postgres"
	redisStorage "wellness-dispatch/internal/adapter/storage/redis"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/internal/service"
	"wellness-dispatch/internal/worker"
	"wellness-dispatch/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// repositories is the storage backend selected by storage.driver.
type repositories struct {
	events       ports.WebhookEventRepository
	deliveries   ports.WebhookDeliveryRepository
	logs         ports.WebhookLogRepository
	destinations ports.DestinationRepository
	securityLogs ports.SecurityLogRepository
	adminUsers   ports.AdminUserRepository
	health       []ports.HealthChecker
	close        func()
}

// app holds every wired component; serve and worker use different parts of it.
type app struct {
	log        zerolog.Logger
	registry   *prometheus.Registry
	metrics    *observability.Metrics
	rdb        *goredis.Client
	repos      *repositories
	alerter    *service.AlertService
	security   ports.SecurityLogger
	auth       *service.AuthServiceImpl
	tokenSvc   ports.TokenService
	sigSvc     ports.SignatureService
	destSvc    ports.DestinationService
	reporting  ports.EventReportingService
	dispatcher *service.Dispatcher
	worker     *worker.RetryWorker
	sweeper    *worker.Sweeper
}

func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.Storage.Driver == "memory" {
		store := memory.New()
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return &repositories{
			events:       store.Events,
			deliveries:   store.Deliveries,
			logs:         store.Logs,
			destinations: store.Destinations,
			securityLogs: store.SecurityLogs,
			adminUsers:   store.AdminUsers,
			close:        func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pgStorage.NewMigrator(pool, log).Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info().Msg("PostgreSQL connected and migrated")

	return &repositories{
		events:       pgStorage.NewEventRepo(pool),
		deliveries:   pgStorage.NewDeliveryRepo(pool),
		logs:         pgStorage.NewWebhookLogRepo(pool),
		destinations: pgStorage.NewDestinationRepo(pool),
		securityLogs: pgStorage.NewSecurityLogRepo(pool),
		adminUsers:   pgStorage.NewAdminUserRepo(pool),
		health:       []ports.HealthChecker{ports.PingCheck{Dependency: "postgresql", PingFunc: pool.Ping}},
		close:        pool.Close,
	}, nil
}

func buildApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		repos.close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	repos.health = append(repos.health, ports.PingCheck{
		Dependency: "redis",
		PingFunc:   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		_ = rdb.Close()
		repos.close()
		return nil, fmt.Errorf("failed to initialize encryption service: %w", err)
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	alerter := service.NewAlertService(&http.Client{}, service.AlertConfig{
		URL:         cfg.Alert.URL,
		MaxRetries:  cfg.Alert.MaxRetries,
		BackoffBase: cfg.Alert.BackoffBase,
		Timeout:     cfg.Alert.Timeout,
	}, metrics, logger.Component(log, "alerter"))

	security := service.NewSecurityService(repos.securityLogs, alerter, service.SecurityConfig{
		FailedLoginThreshold: cfg.Security.FailedLoginThreshold,
		FailedLoginWindow:    cfg.Security.FailedLoginWindow,
		RecentLoginSample:    cfg.Security.RecentLoginSample,
	}, metrics, logger.Component(log, "security"))

	auth := service.NewAuthService(repos.adminUsers, hashSvc, tokenSvc, security, service.AuthConfig{
		MaxFailedAttempts: cfg.Auth.MaxFailedAttempts,
		LockoutDuration:   cfg.Auth.LockoutDuration,
	}, logger.Component(log, "auth"))
	if cfg.Auth.BootstrapEmail != "" {
		if err := auth.EnsureBootstrapAdmin(ctx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword); err != nil {
			_ = rdb.Close()
			repos.close()
			return nil, fmt.Errorf("failed to create bootstrap admin: %w", err)
		}
	}

	destSvc := service.NewDestinationService(repos.destinations, encSvc)
	executor := service.NewDeliveryExecutor(repos.events, repos.logs, sigSvc, &http.Client{},
		service.ExecutorConfig{
			Timeout:   cfg.Webhook.RequestTimeout,
			UserAgent: cfg.Webhook.UserAgent,
		}, metrics, logger.Component(log, "executor"))
	scheduler := service.NewRetryScheduler(repos.deliveries, security, service.BackoffConfig{
		Base:  cfg.Webhook.Backoff.Base,
		Fixed: cfg.Webhook.Backoff.Fixed,
	}, metrics, logger.Component(log, "scheduler"))
	dispatcher := service.NewDispatcher(repos.events, repos.deliveries, destSvc, executor, scheduler,
		metrics, logger.Component(log, "dispatcher"))

	return &app{
		log:        log,
		registry:   registry,
		metrics:    metrics,
		rdb:        rdb,
		repos:      repos,
		alerter:    alerter,
		security:   security,
		auth:       auth,
		tokenSvc:   tokenSvc,
		sigSvc:     sigSvc,
		destSvc:    destSvc,
		reporting:  service.NewReportingService(repos.events, repos.deliveries, repos.logs),
		dispatcher: dispatcher,
		worker: worker.NewRetryWorker(repos.events, dispatcher, worker.RetryWorkerConfig{
			PollInterval: cfg.Worker.PollInterval,
			BatchSize:    cfg.Worker.BatchSize,
			Concurrency:  cfg.Worker.Concurrency,
		}, metrics, log),
		sweeper: worker.NewSweeper(repos.events, cfg.Worker.StaleAfter, cfg.Worker.SweepSchedule, metrics, log),
	}, nil
}

// Router builds the HTTP surface.
func (a *app) Router(cfg *config.Config) *gin.Engine {
	mode := cfg.Server.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	return httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:          a.auth,
		Dispatcher:       a.dispatcher,
		ReportingSvc:     a.reporting,
		DestinationSvc:   a.destSvc,
		Security:         a.security,
		SigSvc:           a.sigSvc,
		TokenSvc:         a.tokenSvc,
		NonceStore:       redisStorage.NewNonceStore(a.rdb),
		IdempotencyCache: redisStorage.NewIdempotencyCache(a.rdb),
		IdempotencyTTL:   cfg.Ingest.IdempotencyTTL,
		RateLimitStore:   redisStorage.NewRateLimitStore(a.rdb),
		RateLimits: map[string]middleware.RateLimitRule{
			httpHandler.RouteLogin:  {Limit: cfg.RateLimit.Login.Limit, Window: cfg.RateLimit.Login.Window},
			httpHandler.RouteIngest: {Limit: cfg.RateLimit.Ingest.Limit, Window: cfg.RateLimit.Ingest.Window},
			httpHandler.RouteAdmin:  {Limit: cfg.RateLimit.Admin.Limit, Window: cfg.RateLimit.Admin.Window},
		},
		Ingest: middleware.IngestAuthConfig{
			AccessKey:          cfg.Ingest.AccessKey,
			SecretKey:          cfg.Ingest.SecretKey,
			TimestampTolerance: cfg.Ingest.TimestampTolerance,
			NonceTTL:           cfg.Ingest.NonceTTL,
		},
		DefaultMaxRetries: cfg.Webhook.DefaultMaxRetries,
		HealthCheckers:    a.repos.health,
		Metrics:           a.metrics,
		Registry:          a.registry,
		Logger:            a.log,
	})
}

// Close flushes pending alerts and releases connections.
func (a *app) Close() {
	a.alerter.Close()
	if err := a.rdb.Close(); err != nil {
		a.log.Warn().Err(err).Msg("redis close failed")
	}
	a.repos.close()
}
