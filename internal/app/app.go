// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alphawell/internal/auth"
	"alphawell/internal/config"
	"alphawell/internal/fixtures"
	hh "alphawell/internal/handlers/http"
	"alphawell/internal/llm"
	"alphawell/internal/middleware"
	"alphawell/internal/repositories"
	"alphawell/internal/repositories/memory"
	mysqlrepo "alphawell/internal/repositories/mysql"
	"alphawell/internal/scheduler"
	"alphawell/internal/services"
	"alphawell/internal/wellsai"
	"alphawell/pkg/db"
	"alphawell/pkg/logger"
)

// App menampung router utama + dependency yang perlu ditutup saat shutdown
type App struct {
	Router    *mux.Router
	Handler   http.Handler // Router + CORS/RequestID/logging
	Tokens    *auth.Manager
	Scheduler *scheduler.Scheduler

	cfg *config.Config
	log *zap.Logger
	db  *sql.DB
}

// Options untuk override di test.
type Options struct {
	BcryptCost int
}

// New merakit repo (mysql kalau DB_DSN ada, selain itu memory + fixture), service, dan routes.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opt Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opt.BcryptCost <= 0 {
		opt.BcryptCost = bcrypt.DefaultCost
	}

	fx, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log}

	// === repos ===
	var (
		users     repositories.UserRepository
		decisions repositories.DecisionRepository
	)
	if cfg.MySQL.DSN != "" {
		conn, err := db.Open(ctx, cfg.MySQL.DSN, db.Options{
			MaxOpen:     cfg.MySQL.MaxOpen,
			MaxIdle:     cfg.MySQL.MaxIdle,
			PingRetries: 20,
			RetryDelay:  3 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("init mysql: %w", err)
		}
		a.db = conn
		users = &mysqlrepo.UserRepo{DB: conn}
		decisions = &mysqlrepo.DecisionRepo{DB: conn}
		log.Info("storage: mysql")
	} else {
		mu, err := memory.NewUserRepoFromFixtures(fx.Users, opt.BcryptCost)
		if err != nil {
			return nil, err
		}
		users = mu
		decisions = memory.NewDecisionRepo(fx.Decisions)
		log.Warn("DB_DSN empty; using in-memory repositories seeded from fixtures")
	}

	// === remote & llm (opsional) ===
	var (
		forecaster services.Forecaster
		neighbors  services.NeighborFetcher
		reports    hh.ReportClient
	)
	if cfg.RemoteEnabled() {
		wc := wellsai.New(wellsai.Config{
			BaseURL: cfg.WellsAPI.BaseURL,
			APIKey:  cfg.WellsAPI.APIKey,
			Timeout: cfg.WellsAPI.Timeout,
		})
		forecaster, neighbors, reports = wc, wc, wc
		log.Info("wells ai client enabled", zap.String("base_url", cfg.WellsAPI.BaseURL))
	} else {
		log.Info("WELLS_API_BASE empty; analysis runs on the local simulator")
	}

	var summarizer services.Summarizer
	if n, err := llm.New(llm.Config{APIKey: cfg.LLM.APIKey, BaseURL: cfg.LLM.APIBase, Model: cfg.LLM.Model}); err == nil {
		summarizer = n
		log.Info("llm narrative enabled", zap.String("model", n.Model()))
	} else {
		log.Info("llm narrative disabled; using template", zap.Error(err))
	}

	// === services ===
	a.Tokens = auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, nil)
	nb := services.NewNeighborhoodService(neighbors, fx.NeighborWells, cfg.WellsAPI.Timeout, logger.Named(log, "svc.neighborhood"))
	metrics := hh.NewMetrics(a.Tokens.RevokedCount)

	h := Handlers{
		Auth: &hh.AuthHandler{
			Svc:     services.NewAuthService(users, a.Tokens, opt.BcryptCost, logger.Named(log, "svc.auth")),
			Metrics: metrics,
		},
		Analysis: &hh.AnalysisHandler{
			Analysis:     services.NewAnalysisService(forecaster, nb, cfg.WellsAPI.Timeout, logger.Named(log, "svc.analysis")),
			Neighborhood: nb,
			Narrative:    services.NewNarrativeService(summarizer, logger.Named(log, "svc.narrative")),
			Decisions:    decisions,
			Metrics:      metrics,
			Log:          logger.Named(log, "handlers.analysis"),
		},
		Reports: &hh.ReportsHandler{
			Client: reports,
			Log:    logger.Named(log, "handlers.reports"),
			PathID: chiParam("id"),
		},
		Metrics: metrics,
		Tokens:  a.Tokens,
		Ready:   hh.ReadyHandler(pingerOrNil(a.db)),
	}

	a.Router = mux.NewRouter()
	RegisterRoutes(a.Router, h)
	a.Handler = middleware.CORSWithOrigin(cfg.CORSOrigin)(
		middleware.RequestID(
			middleware.Logging(logger.Named(log, "http"))(a.Router),
		),
	)

	a.Scheduler = scheduler.NewScheduler(cfg.Auth.PruneCron, a.Tokens, logger.Named(log, "scheduler"))
	return a, nil
}

// Close menutup koneksi DB kalau ada.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// interface nil yang bersih (bukan *sql.DB nil di dalam interface)
func pingerOrNil(conn *sql.DB) hh.Pinger {
	if conn == nil {
		return nil
	}
	return conn
}
