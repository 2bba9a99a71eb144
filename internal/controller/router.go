package controller

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	transferApp "github.com/mcubank/transfers/internal/application/transfer"
	"github.com/mcubank/transfers/internal/config"
	"github.com/mcubank/transfers/internal/ledger"
	customMW "github.com/mcubank/transfers/internal/middleware"
	"github.com/mcubank/transfers/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Ledger     *ledger.Ledger
	ProcessUC  *transferApp.ProcessTransferUseCase
	Metrics    *observability.Metrics
	CORSConfig config.CORSConfig
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	if deps.Metrics != nil {
		r.Use(customMW.Metrics(deps.Metrics))
	}

	healthH := NewHealthController()
	accountH := NewAccountController(deps.Ledger)
	transferH := NewTransferController(deps.ProcessUC, deps.Ledger)

	r.Get("/health", healthH.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Account
		r.Get("/account", accountH.Get)
		r.Get("/account/balance", accountH.GetBalance)

		// Transfers
		r.Post("/transfers", transferH.Create)
		r.Get("/transfers/form", transferH.GetForm)
		r.Post("/transfers/reset", transferH.Reset)

		// Input assistance
		r.Post("/swift/format", transferH.FormatSwift)
	})

	return r
}
