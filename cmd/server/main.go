// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	apihttp "github.com/poligap/poligap/internal/api/http"
	"github.com/poligap/poligap/internal/app/service"
	pgrepo "github.com/poligap/poligap/internal/infrastructure/repository/postgres"
	redisrepo "github.com/poligap/poligap/internal/infrastructure/repository/redis"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/internal/observability/metrics"
	"github.com/poligap/poligap/internal/platform/summarizer"
	"github.com/poligap/poligap/pkg/config"
)

const (
	appName    = "poligap-server"
	appVersion = "v1.0.0"
)

// Server holds the assembled application.
type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	collector *metrics.Collector

	db         *gorm.DB
	redisCache *redisrepo.Cache

	httpServer *http.Server
}

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	srv, err := NewServer(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		srv.logger.Error("Failed to start server", logging.Error(err))
		os.Exit(1)
	}

	srv.WaitForShutdown()
}

// NewServer loads configuration and wires all components.
func NewServer(configFile string) (*Server, error) {
	cfg, err := config.Load(config.LoaderOptions{ConfigFile: configFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	collector := metrics.NewCollector(metrics.CollectorConfig{
		Namespace:            "poligap",
		EnableGoMetrics:      true,
		EnableProcessMetrics: true,
	})

	srv := &Server{cfg: cfg, logger: logger, collector: collector}

	catalog, err := benchmark.NewCatalogWithOverrides(cfg.Analysis.CatalogOverridePath)
	if err != nil {
		return nil, fmt.Errorf("load rule catalogue: %w", err)
	}
	engineOpts := []benchmark.EngineOption{
		benchmark.WithTopRecommendations(cfg.Analysis.TopRecommendations),
	}
	if cfg.Analysis.BenchmarkOverridePath != "" {
		rows, err := benchmark.LoadBenchmarkFile(cfg.Analysis.BenchmarkOverridePath)
		if err != nil {
			return nil, fmt.Errorf("load benchmark table: %w", err)
		}
		engineOpts = append(engineOpts, benchmark.WithIndustryBenchmarks(rows))
	}
	engine := benchmark.NewEngine(catalog, engineOpts...)

	var cache extraction.ResultCache
	if cfg.Redis.Enabled {
		redisCache, err := redisrepo.NewCache(logger, collector, redisrepo.CacheConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			PoolSize:  cfg.Redis.PoolSize,
			KeyPrefix: cfg.Redis.KeyPrefix,
			TTL:       cfg.Redis.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		srv.redisCache = redisCache
		cache = redisCache
		logger.Info("extraction cache backed by redis", logging.String("addr", cfg.Redis.Addr))
	}

	extractor := extraction.NewExtractor(cache)
	suggester := suggestion.NewSuggester(extractor)

	opts := service.Options{
		DefaultFrameworks: cfg.Analysis.DefaultFrameworks,
		DefaultIndustry:   cfg.Analysis.DefaultIndustry,
		Logger:            logger,
		Collector:         collector,
	}

	if cfg.Database.Enabled {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("configure postgres pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		repo, err := pgrepo.NewAnalysisRepository(db)
		if err != nil {
			return nil, fmt.Errorf("init analysis repository: %w", err)
		}
		srv.db = db
		opts.Repository = repo
		logger.Info("analysis persistence enabled",
			logging.String("host", cfg.Database.Host),
			logging.String("database", cfg.Database.Database))
	}

	if cfg.Summarizer.Enabled {
		opts.Summarizer = summarizer.NewClient(logger, collector, summarizer.Config{
			BaseURL:    cfg.Summarizer.BaseURL,
			APIKey:     cfg.Summarizer.APIKey,
			Model:      cfg.Summarizer.Model,
			Timeout:    cfg.Summarizer.Timeout,
			MaxRetries: cfg.Summarizer.MaxRetries,
		})
		logger.Info("summarizer enabled", logging.String("model", cfg.Summarizer.Model))
	}

	analysisService := service.NewAnalysisService(engine, extractor, suggester, opts)
	router := apihttp.NewRouter(cfg, logger, collector, analysisService, appVersion)

	srv.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return srv, nil
}

// Start begins serving HTTP in the background.
func (s *Server) Start() error {
	s.logger.Info("starting server",
		logging.String("app", appName),
		logging.String("version", appVersion),
		logging.String("addr", s.httpServer.Addr),
		logging.String("environment", s.cfg.Server.Environment))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("http server failed", logging.Error(err))
		}
	}()
	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM and drains connections.
func (s *Server) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	s.logger.Info("shutting down", logging.String("signal", sig.String()))

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("http shutdown failed", logging.Error(err))
	}

	if s.redisCache != nil {
		if err := s.redisCache.Close(); err != nil {
			s.logger.Warn("redis close failed", logging.Error(err))
		}
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				s.logger.Warn("postgres close failed", logging.Error(err))
			}
		}
	}

	_ = s.logger.Sync()
	s.logger.Info("server stopped")
}
