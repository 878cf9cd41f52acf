package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/auth"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/feedback"
	"github.com/saulo-duarte/appraisal-api/internal/goal"
	"github.com/saulo-duarte/appraisal-api/internal/middlewares"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	EmployeeHandler    *employee.Handler
	ReviewCycleHandler *reviewcycle.Handler
	AppraisalHandler   *appraisal.Handler
	GoalHandler        *goal.Handler
	FeedbackHandler    *feedback.Handler

	AllowedOrigins []string
	MetricsEnabled bool
	// Ready backs /readyz. Nil means always ready.
	Ready func(ctx context.Context) error
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		r.Use(middlewares.Metrics)
		r.Method(http.MethodGet, "/metrics", middlewares.MetricsHandler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cfg.Ready(ctx); err != nil {
				config.WithContext(r.Context()).WithError(err).Warn("Readiness check failed")
				config.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		config.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.OptionalAuth)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/employeeProfiles", employee.Routes(cfg.EmployeeHandler))
		r.Mount("/reviewCycles", reviewcycle.Routes(cfg.ReviewCycleHandler))
		r.Mount("/appraisals", appraisal.Routes(cfg.AppraisalHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/feedbacks", feedback.Routes(cfg.FeedbackHandler))
	})
	return r
}
