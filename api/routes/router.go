package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akomcomputer/shopsuite-backend/api/controllers"
	"github.com/akomcomputer/shopsuite-backend/api/middleware"
	"github.com/akomcomputer/shopsuite-backend/internal/leads"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/auth/session"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

// sessionManager is the full session surface the router needs: the Auth
// middleware checks sessions, login issues them, logout revokes them.
type sessionManager interface {
	session.Checker
	controllers.SessionWriter
}

// Deps carries everything the router wires into handlers. RedisLimiter,
// DBPinger, RedisPinger, Scoring, and Registry may be nil; the affected
// endpoints degrade instead of panicking.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Store        *store.Store
	Sessions     sessionManager
	Scoring      leads.Service
	RedisLimiter middleware.LoginLimiter
	RedisPinger  controllers.Pinger
	DBPinger     controllers.Pinger
	Registry     *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger
	st := deps.Store

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.RedisPinger, deps.DBPinger))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/catalog", controllers.PublicCatalog(st, logg))
		r.Get("/catalog/{slug}", controllers.PublicCatalogItem(st, logg))
		r.Get("/sources", controllers.PublicSources(st, logg))
		r.Get("/repairs/{ticketNo}", controllers.PublicRepairStatus(st, logg))
		r.Get("/settings", controllers.PublicSettings(st, logg))
	})

	loginPolicy := middleware.LoginRateLimitPolicy{
		Window:  cfg.Auth.LoginWindow,
		IPLimit: cfg.Auth.LoginIPLimit,
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.LoginRateLimit(loginPolicy, deps.RedisLimiter, logg)).
			Post("/login", controllers.AuthLogin(cfg.Auth, deps.Sessions, logg))
		r.With(middleware.Auth(cfg.Auth, deps.Sessions, logg)).
			Post("/logout", controllers.AuthLogout(deps.Sessions, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth, deps.Sessions, logg))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(st, logg))
			r.Post("/", controllers.CreateInventoryItem(st, logg))
			r.Delete("/{id}", controllers.DeleteInventoryItem(st, logg))
		})

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", controllers.ListLeads(st, logg))
			r.Post("/", controllers.CreateLead(st, logg))
			r.Post("/{id}/score", controllers.ScoreLead(deps.Scoring, logg))
			r.Post("/{id}/import", controllers.ImportLead(st, logg))
			r.Post("/{id}/ignore", controllers.IgnoreLead(st, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(st, logg))
			r.Post("/", controllers.CreateCustomer(st, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(st, logg))
			r.Post("/", controllers.CreateProduct(st, logg))
			r.Get("/low-stock", controllers.ListLowStockProducts(st, logg))
			r.Post("/{id}/stock", controllers.AdjustProductStock(st, logg))
		})

		r.Get("/stock-movements", controllers.ListStockMovements(st, logg))

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(st, logg))
			r.Post("/", controllers.CreateSale(st, logg))
		})

		r.Route("/repairs", func(r chi.Router) {
			r.Get("/", controllers.ListRepairs(st, logg))
			r.Post("/", controllers.CreateRepairTicket(st, logg))
			r.Patch("/{id}/status", controllers.UpdateRepairStatus(st, logg))
			r.Get("/{id}/logs", controllers.ListRepairLogs(st, logg))
		})

		r.Route("/support", func(r chi.Router) {
			r.Get("/", controllers.ListSupportTickets(st, logg))
			r.Post("/", controllers.OpenSupportTicket(st, logg))
			r.Patch("/{id}/status", controllers.UpdateSupportTicketStatus(st, logg))
			r.Get("/{id}/messages", controllers.ListSupportMessages(st, logg))
			r.Post("/{id}/messages", controllers.AppendSupportMessage(st, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(st, logg))
			r.Put("/", controllers.UpdateSettings(st, logg))
		})
	})

	return r
}
