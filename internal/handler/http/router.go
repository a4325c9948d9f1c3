package http

import (
	"log/slog"
	"os"

	"github.com/fdestech/timetrack-backend-go/internal/config"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	workEntryHandler WorkEntryHandler,
	workHourRequestHandler WorkHourRequestHandler,
	statsHandler StatsHandler,
	preferenceHandler PreferenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetrack-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/microsoft", authHandler.OAuthCallbackMicrosoft)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/microsoft", authHandler.LoginWithMicrosoft)
				})
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				// Reviewer (hr or manager)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.GetByID)
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})

				r.Get("/{userId}/daily-report/{date}", workEntryHandler.DailyReport)
			})

			r.Route("/work-entries", func(r chi.Router) {
				r.Post("/", workEntryHandler.Create)
				r.Get("/my", workEntryHandler.ListMine)

				// Reviewer (hr or manager)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/", workEntryHandler.List)
					r.Get("/export", workEntryHandler.Export)
					r.Patch("/{id}/status", workEntryHandler.UpdateStatus)
					r.Delete("/{id}", workEntryHandler.Delete)
				})
			})

			r.Route("/work-hour-requests", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/", workHourRequestHandler.Create)
					r.Get("/my", workHourRequestHandler.ListMine)
					r.Get("/available-dates", workHourRequestHandler.AvailableDates)
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", workHourRequestHandler.ListPending)
					r.Put("/{id}", workHourRequestHandler.Review)
				})

				r.Get("/{id}", workHourRequestHandler.GetByID)
			})

			r.Get("/stats", statsHandler.Stats)

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/manager-dashboard-stats", statsHandler.ManagerDashboard)
				r.Route("/manager-preferences", func(r chi.Router) {
					r.Get("/", preferenceHandler.Get)
					r.Post("/", preferenceHandler.Save)
				})
			})
		})
	})
	return r
}
