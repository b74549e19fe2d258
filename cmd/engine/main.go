package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"signalboost-engine/internal/config"
	"signalboost-engine/internal/domain"
	"signalboost-engine/internal/enrich"
	"signalboost-engine/internal/events"
	"signalboost-engine/internal/httpapi"
	"signalboost-engine/internal/logger"
	"signalboost-engine/internal/pipeline"
	"signalboost-engine/internal/rank"
	"signalboost-engine/internal/secrets"
	"signalboost-engine/internal/source"
	"signalboost-engine/internal/source/crunchbase"
	"signalboost-engine/internal/source/jobboard"
	"signalboost-engine/internal/source/linkedin"
	"signalboost-engine/internal/source/util"
)

func main() {
	// Engine data dir: use env if provided (the dashboard can pass one), else local folder.
	dataDir := os.Getenv("SIGNALBOOST_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Single-instance guard: two engines sharing a data dir would fight over
	// the config file and the port.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		fmt.Fprintln(os.Stderr, "another engine instance holds the data dir lock")
		os.Exit(1)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := config.EnsureUserSeeds(dataDir, filepath.Join("config", "seeds.yml")); err != nil {
		fmt.Fprintf(os.Stderr, "seeds bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg)
		cfg, _ = config.NormalizeAndValidate(cfg)
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed (%s): %v\n", userCfgPath, err)
		os.Exit(1)
	}
	cfgVal.Store(cfg)

	log, err := logger.New(cfg.App.JSONLog, cfg.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	_, vr := config.NormalizeAndValidate(cfg)
	for _, warn := range vr.Warnings {
		log.Warn("config", zap.String("warning", warn))
	}

	seedsPath := config.SeedsPath(dataDir, cfg)
	seeds, err := source.LoadSeeds(seedsPath)
	if err != nil {
		log.Fatal("seeds load failed", zap.String("path", seedsPath), zap.Error(err))
	}

	limiter := util.NewHostLimiter(cfg.Sources.RequestsPerSec, cfg.Sources.Burst)
	hub := events.NewHub()

	pipe := &pipeline.Pipeline{
		Scorer:       rank.RuleScorer{},
		Hub:          hub,
		Log:          log,
		FetchTimeout: time.Duration(cfg.Pipeline.FetchTimeoutSeconds) * time.Second,
	}

	if cfg.Sources.LinkedIn.Enabled {
		pipe.People = linkedin.New(linkedin.Config{
			SearchScrape: cfg.Sources.LinkedIn.SearchScrape,
			Seeds:        seeds.People,
		}, limiter, log)
	}
	var fundingProvider *crunchbase.Provider
	if cfg.Sources.Crunchbase.Enabled {
		fundingProvider = crunchbase.New(seeds)
		pipe.Funding = fundingProvider
	}
	var jobsProvider *jobboard.Provider
	if cfg.Sources.JobBoards.Enabled {
		jobsProvider = jobboard.New(seeds)
		pipe.Jobs = jobsProvider
	}

	var enricher *enrich.Client
	if cfg.Enrichment.Enabled {
		key, kerr := secrets.GetHunterKey(cfg.Enrichment.KeyringAccount)
		if kerr != nil {
			log.Warn("enrichment runs with defaults only", zap.Error(kerr))
		}
		enricher = enrich.New(enrich.Options{
			APIKey:   key,
			BaseURL:  cfg.Enrichment.BaseURL,
			Timeout:  time.Duration(cfg.Enrichment.TimeoutSeconds) * time.Second,
			CacheTTL: time.Duration(cfg.Enrichment.CacheTTLSeconds) * time.Second,
		}, limiter, log)
		pipe.Enricher = enricher
	}

	var genStatus atomic.Value
	genStatus.Store(httpapi.GenerateStatus{})

	deps := httpapi.Deps{
		Hub:         hub,
		Log:         log,
		CfgVal:      &cfgVal,
		GenStatus:   &genStatus,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Generate:    pipe.Generate,
		FetchFunding: func(ctx context.Context, q domain.Query) ([]domain.FundingRecord, error) {
			if fundingProvider == nil {
				return []domain.FundingRecord{}, nil
			}
			return fundingProvider.FetchFunding(ctx, q)
		},
		FetchJobs: func(ctx context.Context, q domain.Query) ([]domain.JobActivity, error) {
			if jobsProvider == nil {
				return []domain.JobActivity{}, nil
			}
			return jobsProvider.FetchJobs(ctx, q)
		},
		Enrich: func(ctx context.Context, lead domain.Lead) domain.Lead {
			if enricher == nil {
				return enrich.Defaults(lead)
			}
			return enricher.EnrichLead(ctx, lead)
		},
		Scorer: rank.RuleScorer{},
	}

	mux := httpapi.NewMux(deps)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen failed", zap.String("addr", addr), zap.Error(err))
	}

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
	)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "X-Shutdown-Token"},
	})

	srv := &http.Server{
		Handler:           c.Handler(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal("token generation failed", zap.Error(err))
	}
	// Drop the token where a local dashboard can pick it up.
	tokenPath := filepath.Join(dataDir, "engine.token")
	if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
		log.Fatal("token write failed", zap.String("path", tokenPath), zap.Error(err))
	}
	defer os.Remove(tokenPath)
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("config", userCfgPath),
	)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal("serve failed", zap.Error(err))
	}
}
