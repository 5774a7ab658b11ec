package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AllowedOrigins []string
	RateLimit      string
	LogLevel       slog.Level
	Logger         *slog.Logger
}

type Handlers struct {
	User       UserHandler
	Attendance AttendanceHandler
	Sale       SaleHandler
	Product    ProductHandler
	WorkReport WorkReportHandler
	Dashboard  DashboardHandler
}

// NewLogger builds the JSON logger with ECS attribute names used by the request logger.
func NewLogger(out io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

func NewRouter(cfg RouterConfig, sessions auth.SessionService, h Handlers) (*chi.Mux, error) {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	rateLimit := cfg.RateLimit
	if rateLimit == "" {
		rateLimit = "100-M"
	}
	limit, err := middleware.RateLimit(rateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate limiter: %w", err)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(limit)
		r.Use(chiMiddleware.AllowContentType("application/json"))

		// Token verified, local account optional
		r.With(middleware.IdentityRequired(sessions)).Post("/users", h.User.Create)

		// Requires a local account
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(sessions))

			r.Get("/users/me", h.User.Me)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.Stats)
				r.Get("/activities", h.Dashboard.Activities)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/location", h.Attendance.Location)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Post("/", h.Attendance.Record)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/daily-stats", h.Sale.DailyStats)
				r.Get("/recent", h.Sale.Recent)
				r.Get("/{id}", h.Sale.Get)
				r.Post("/", h.Sale.Create)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Product.List)
				r.Get("/categories", h.Product.ListCategories)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Product.Create)
					r.Post("/categories", h.Product.CreateCategory)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.WorkReport.List)
				r.Post("/", h.WorkReport.Create)
				r.Get("/{id}", h.WorkReport.Get)
				r.Patch("/{id}", h.WorkReport.Update)
			})
		})
	})

	return r, nil
}
