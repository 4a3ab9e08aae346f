package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akazarov/serptrack/docs"
	balancehandlers "github.com/akazarov/serptrack/internal/handlers/balance"
	pricinghandlers "github.com/akazarov/serptrack/internal/handlers/pricing"
	projecthandlers "github.com/akazarov/serptrack/internal/handlers/projects"
	triggerhandlers "github.com/akazarov/serptrack/internal/handlers/trigger"
	"github.com/akazarov/serptrack/internal/service"
	"github.com/akazarov/serptrack/pkg/auth"
	"github.com/akazarov/serptrack/pkg/ratelimit"
	"github.com/akazarov/serptrack/pkg/utils"
)

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Recharge(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	RedeemCoupon(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type TriggerHandler interface {
	Enqueue(w http.ResponseWriter, r *http.Request)
	Live(w http.ResponseWriter, r *http.Request)
	AutoTracking(w http.ResponseWriter, r *http.Request)
	SyncPending(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	GetPrice(w http.ResponseWriter, r *http.Request)
	SetPrice(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BalanceHandler BalanceHandler
	ProjectHandler ProjectHandler
	TriggerHandler TriggerHandler
	PricingHandler PricingHandler

	jwtService auth.JWTServiceInterface
	limiter    ratelimit.Limiter
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, limiter ratelimit.Limiter) *Handlers {
	return &Handlers{
		BalanceHandler: balancehandlers.New(s.BalanceService),
		ProjectHandler: projecthandlers.New(s.ProjectService),
		TriggerHandler: triggerhandlers.New(s.WorkerService),
		PricingHandler: pricinghandlers.New(s.PricingService),
		jwtService:     jwtService,
		limiter:        limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))

		r.Route("/api/users/{userID}", func(r chi.Router) {
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/recharge", h.BalanceHandler.Recharge)
				r.Get("/history", h.BalanceHandler.GetHistory)
			})
			r.Post("/coupons/redeem", h.BalanceHandler.RedeemCoupon)
		})

		r.Route("/api/projects", func(r chi.Router) {
			r.Post("/", h.ProjectHandler.Create)
			r.Get("/{projectID}", h.ProjectHandler.Get)
		})

		r.Route("/api/pricing", func(r chi.Router) {
			r.Get("/{action}", h.PricingHandler.GetPrice)
			r.Put("/{action}", h.PricingHandler.SetPrice)
		})

		r.Route("/api/worker", func(r chi.Router) {
			r.Post("/enqueue", h.TriggerHandler.Enqueue)
			r.With(h.rateLimited).Post("/live", h.TriggerHandler.Live)
			r.Post("/auto-tracking", h.TriggerHandler.AutoTracking)
			r.Post("/sync-pending", h.TriggerHandler.SyncPending)
		})
	})

	return r
}

// rateLimited throttles per caller, so one integration flooding live checks
// cannot starve the rest.
func (h *Handlers) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ := r.Context().Value(auth.CallerKey).(string)
		allowed, err := h.limiter.Allow(r.Context(), "live:"+caller)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !allowed {
			utils.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
