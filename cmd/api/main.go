package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/logger"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	// 1. Repositories and the transactional store
	store := database.NewStore(db)
	leadRepo := database.NewLeadRepository(db)
	actionRepo := database.NewActionRepository(db)
	processRepo := database.NewProcessRepository(db)

	// 2. UseCases
	leadUC := usecase.NewLeadUseCase(leadRepo)
	engine := usecase.NewProcessEngine(processRepo, cfg.ProcessDefaultStatus)
	recordActionUC := usecase.NewRecordActionUseCase(store, actionRepo, engine)

	// 3. Handlers
	leadHandler := handlers.NewLeadHandler(leadUC)
	actionHandler := handlers.NewActionHandler(recordActionUC, actionRepo)
	processHandler := handlers.NewProcessHandler(processRepo)
	healthHandler := handlers.NewHealthHandler(db)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.Search)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	r.Post("/actions", actionHandler.Create)
	r.Get("/actions", actionHandler.Search)
	r.Get("/actions/{id}", actionHandler.Get)

	r.Get("/processes", processHandler.Search)
	r.Get("/processes/{id}", processHandler.Get)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	zlog.Info("CRM API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
