package http

import (
	"log/slog"
	"os"

	"github.com/bizpanel/panel-backend-go/internal/config"
	"github.com/bizpanel/panel-backend-go/internal/handler/http/middleware"
	"github.com/bizpanel/panel-backend-go/internal/pkg/jwt"
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
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bizpanel"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// EventSource cannot carry an Authorization header; the stream
		// authenticates with its own short-lived token.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.Me)

			r.Route("/users", func(r chi.Router) {
				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})

				// Admin or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.Get)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", userHandler.ListEmployees)
				r.Get("/{id}/attendance", attendanceHandler.ListByEmployee)
				r.Get("/{id}/schedule", scheduleHandler.Get)
				r.Put("/{id}/schedule", scheduleHandler.Replace)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/me", attendanceHandler.ListMine)

				// Admin or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", attendanceHandler.List)
					r.Patch("/{id}", attendanceHandler.Amend)
				})
			})

			r.Get("/schedule/me", scheduleHandler.GetMine)

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/periods/current", payrollHandler.CurrentPeriod)
				r.Post("/generate", payrollHandler.Generate)
				r.Post("/batches", payrollHandler.SaveBatch)
				r.Get("/batches", payrollHandler.ListBatches)
				r.Get("/batches/{period}", payrollHandler.GetBatch)
				r.Get("/rates", payrollHandler.GetRates)
				r.Put("/rates", payrollHandler.UpdateRates)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Get("/sse-token", notificationHandler.GetSSEToken)

				// Owner only
				r.With(middleware.RequireOwner).Delete("/", notificationHandler.ClearAll)
			})
		})
	})

	return r
}
