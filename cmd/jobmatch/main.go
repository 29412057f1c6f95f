package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/config"
	"github.com/kailas-cloud/jobmatch/internal/db"
	dbRedis "github.com/kailas-cloud/jobmatch/internal/db/redis"
	dbSqlite "github.com/kailas-cloud/jobmatch/internal/db/sqlite"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/posting"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
	"github.com/kailas-cloud/jobmatch/internal/domain/thesaurus"
	logpkg "github.com/kailas-cloud/jobmatch/internal/logger"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
	resumerepo "github.com/kailas-cloud/jobmatch/internal/repository/resume"
	chiTransport "github.com/kailas-cloud/jobmatch/internal/transport/chi"
	mcpTransport "github.com/kailas-cloud/jobmatch/internal/transport/mcp"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	matchuc "github.com/kailas-cloud/jobmatch/internal/usecase/match"
	resumeuc "github.com/kailas-cloud/jobmatch/internal/usecase/resume"
	"github.com/kailas-cloud/jobmatch/internal/version"
)

func main() {
	// Optional .env; real environment variables win.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting jobmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("mcp_enabled", cfg.MCP.Enabled),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	thes, err := loadThesaurus(cfg.Matching.ThesaurusPath, logger)
	if err != nil {
		logger.Fatal("Failed to load thesaurus", zap.Error(err))
	}

	weights := engineWeights(cfg.Matching.Weights)
	if err := weights.Validate(); err != nil {
		logger.Fatal("Invalid scoring weights", zap.Error(err))
	}
	engine := dommatch.NewEngine(thes, weights)

	// Metrics are registered explicitly, no init().
	metrics.RegisterHTTPMetrics()
	metrics.RegisterMatchMetrics()

	resumeRepo := resumerepo.New(store, cfg.Storage.KeyPrefix)

	matchSvc := matchuc.New(engine, resumeRepo).
		WithJobValidation(*cfg.Matching.ValidateJobPosting).
		WithLimits(posting.Limits{MinChars: cfg.Limits.JobMinChars, MaxChars: cfg.Limits.JobMaxChars}).
		WithRecorder(metrics.MatchRecorder{})
	resumeSvc := resumeuc.New(resumeRepo).
		WithLimits(domresume.Limits{MinTextChars: cfg.Limits.ResumeMinChars, MaxFileBytes: cfg.Limits.ResumeMaxBytes})
	healthSvc := healthuc.New(store, thes)

	server := chiTransport.NewServer(matchSvc, resumeSvc, healthSvc, logger).
		WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes)

	routerCfg := chiTransport.RouterConfig{
		APIKeys:        cfg.Auth.APIKeys,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	if cfg.MCP.Enabled {
		routerCfg.MCP = mcpTransport.Handler(mcpTransport.NewServer(matchSvc, true, logger))
		logger.Info("MCP endpoint enabled", zap.String("path", "/mcp"))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           chiTransport.NewRouter(server, routerCfg, logger),
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore creates the resume store for the configured driver.
func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case "redis", "valkey":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Addrs,
			Password:   cfg.Password,
			Standalone: cfg.Standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		return s, nil
	case "sqlite":
		s, err := dbSqlite.NewStore(dbSqlite.Config{Path: cfg.Path})
		if err != nil {
			return nil, fmt.Errorf("create sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// loadThesaurus returns the built-in thesaurus merged with the optional override file.
func loadThesaurus(path string, logger *zap.Logger) (thesaurus.Thesaurus, error) {
	thes := thesaurus.Default()
	if path != "" {
		extra, err := thesaurus.Load(path)
		if err != nil {
			return thesaurus.Thesaurus{}, err
		}
		thes = thes.Merge(extra)
		logger.Info("Thesaurus override merged", zap.String("path", path), zap.Int("entries", extra.Len()))
	}

	// One-way entries are kept; symmetric lookup covers them at match time.
	for _, p := range thes.Asymmetries() {
		logger.Debug("One-way thesaurus entry", zap.String("term", p.Term), zap.String("synonym", p.Synonym))
	}
	logger.Info("Thesaurus loaded", zap.Int("entries", thes.Len()))
	return thes, nil
}

func engineWeights(c config.WeightsConfig) dommatch.Weights {
	return dommatch.Weights{
		Enriched: c.Enriched,
		Exact:    c.Exact,
		Jaccard:  c.Jaccard,
		Boost:    c.Boost,
		Scale:    c.Scale,
		Cap:      c.Cap,
	}
}
