package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/clover/config"
	"github.com/Ramsey-B/clover/internal/repositories/job"
	"github.com/Ramsey-B/clover/internal/repositories/provider"
	reputationrepo "github.com/Ramsey-B/clover/internal/repositories/reputation"
	"github.com/Ramsey-B/clover/internal/repositories/servicerequest"
	"github.com/Ramsey-B/clover/pkg/categories"
	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/events"
	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/matching"
	"github.com/Ramsey-B/clover/pkg/middleware"
	"github.com/Ramsey-B/clover/pkg/redis"
	"github.com/Ramsey-B/clover/pkg/reputation"
	"github.com/Ramsey-B/clover/pkg/routes/health"
	"github.com/Ramsey-B/clover/pkg/routes/match"
	"github.com/Ramsey-B/clover/pkg/startup"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/workload"
)

// Version is set at build time
var Version = "dev"

func main() {
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := ectoenv.BindEnv(cfg); err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	zapLogger := buildZapLogger(cfg)
	defer func() { _ = zapLogger.Sync() }()
	logger := zapadapter.NewZapEctoLogger(zapLogger, nil)

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	tracing.SetTracer(tp.Tracer(cfg.AppName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("Service exited with error")
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = tp.Shutdown(shutdownCtx)
}

func run(ctx context.Context, cfg *config.Config, logger ectologger.Logger) error {
	var (
		db          database.DB
		redisClient *redis.Client
		producer    *kafka.Producer
	)

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)

	boot.AddDependency(&startup.Func{
		Name: "postgres",
		StartFn: func(ctx context.Context) error {
			conn, err := connectDatabase(cfg, logger)
			if err != nil {
				return err
			}
			db = conn
			return nil
		},
		StopFn: func(ctx context.Context) error {
			if db == nil {
				return nil
			}
			return db.Close()
		},
	})

	boot.AddDependency(&startup.Func{
		Name:  "redis",
		After: []string{"postgres"},
		StartFn: func(ctx context.Context) error {
			client, err := redis.NewClient(redis.Config{
				Host:     cfg.RedisHost,
				Port:     cfg.RedisPort,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			}, logger)
			if err != nil {
				// The reputation cache is an optimization, not a dependency.
				logger.WithError(err).Warn("Redis unavailable; reputation caching disabled")
				return nil
			}
			redisClient = client
			return nil
		},
		StopFn: func(ctx context.Context) error {
			if redisClient == nil {
				return nil
			}
			return redisClient.Close()
		},
	})

	if cfg.KafkaEventsEnabled {
		boot.AddDependency(&startup.Func{
			Name: "kafka",
			StartFn: func(ctx context.Context) error {
				producer = kafka.NewProducer(kafka.ProducerConfig{
					Brokers:      cfg.KafkaBrokers,
					Topic:        cfg.KafkaOutputTopic,
					BatchSize:    cfg.KafkaBatchSize,
					BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
					RequiredAcks: cfg.KafkaRequiredAcks,
					Compression:  cfg.KafkaCompression,
				}, logger)
				return nil
			},
			StopFn: func(ctx context.Context) error {
				if producer == nil {
					return nil
				}
				return producer.Close()
			},
		})
	}

	if err := boot.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := boot.Stop(stopCtx); err != nil {
			logger.WithError(err).Error("Failed to stop dependencies")
		}
	}()

	table, err := loadCategoryTable(cfg, logger)
	if err != nil {
		return err
	}

	requestRepo := servicerequest.NewRepository(db, logger)
	providerRepo := provider.NewRepository(db, logger)
	jobRepo := job.NewRepository(db, logger)
	ratingRepo := reputationrepo.NewRepository(db, logger)

	workloadResolver := workload.NewResolver(logger, jobRepo)
	reputationAggregator := reputation.NewAggregator(logger, ratingRepo, redisClient, cfg.ReputationTTL)
	emitter := events.NewEmitter(producer, logger)

	service := matching.NewService(
		logger,
		requestRepo,
		providerRepo,
		workloadResolver,
		reputationAggregator,
		table,
		emitter,
		matching.Config{
			EnrichWorkerCount: cfg.EnrichWorkerCount,
			EstimateHours:     cfg.EstimateHours,
			MaxCandidates:     cfg.MaxCandidates,
		},
	)

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}
	if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
		return fmt.Errorf("failed to register logger: %w", err)
	}
	if err := ectoinject.RegisterInstance[*matching.Service](container, service); err != nil {
		return fmt.Errorf("failed to register matching service: %w", err)
	}

	e := buildServer(cfg, logger)

	checker := health.NewChecker(db, healthPinger(redisClient), Version)
	checker.RegisterRoutes(e)

	match.Register(e.Group("/api/v1/matches"))

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Infof("Starting %s on %s", cfg.AppName, addr)
		checker.SetReady(true)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	checker.SetReady(false)
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func buildServer(cfg *config.Config, logger ectologger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.Error(logger)
	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func connectDatabase(cfg *config.Config, logger ectologger.Logger) (database.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName,
		cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode,
	)

	conn, err := sqlx.Connect(cfg.DatabaseDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	conn.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	conn.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	driver, err := migratepg.WithInstance(conn.DB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
		AutoRollback:        cfg.DatabaseMigrationAutoRollback,
	})
	if err := migrations.Migrate(cfg.DatabaseName, driver); err != nil {
		return nil, err
	}

	logger.Infof("Connected to database %s", cfg.DatabaseName)
	return database.NewDatabaseInstance(conn, logger), nil
}

func loadCategoryTable(cfg *config.Config, logger ectologger.Logger) (*categories.Table, error) {
	if cfg.CategoryTablePath == "" {
		return categories.Default(), nil
	}
	table, err := categories.Load(cfg.CategoryTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load category table from %s: %w", cfg.CategoryTablePath, err)
	}
	logger.Infof("Loaded category table from %s", cfg.CategoryTablePath)
	return table, nil
}

// healthPinger avoids handing the checker a typed nil when Redis is disabled.
func healthPinger(client *redis.Client) health.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func buildZapLogger(cfg *config.Config) *zap.Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapCfg.Build()
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	return zapLogger.With(zap.String("app", cfg.AppName))
}
