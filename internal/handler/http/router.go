package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/middleware"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Client     ClientHandler
	Operator   OperatorHandler
	Event      EventHandler
	Assignment AssignmentHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdeck"),
		slog.String("version", "v1.0.0"),
		slog.String("env", os.Getenv("APP_ENV")),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Client.GetByID)
					r.Put("/", h.Client.Update)
					r.With(middleware.AdminOnly).Delete("/", h.Client.Delete)
				})
			})

			r.Route("/operators", func(r chi.Router) {
				r.Get("/", h.Operator.List)
				r.Post("/", h.Operator.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Operator.GetByID)
					r.Put("/", h.Operator.Update)
					r.With(middleware.AdminOnly).Delete("/", h.Operator.Delete)
				})
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", h.Event.List)
				r.Post("/", h.Event.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Event.GetByID)
					r.Put("/", h.Event.Update)
					r.With(middleware.AdminOnly).Delete("/", h.Event.Delete)

					r.Get("/assignments", h.Assignment.ListByEvent)
					r.Post("/assignments", h.Assignment.Create)

					r.Get("/payroll", h.Payroll.EventPayroll)
					r.Get("/payroll/export", h.Report.ExportEventPayroll)
				})
			})

			r.Route("/assignments/{id}", func(r chi.Router) {
				r.Get("/", h.Assignment.GetByID)
				r.Put("/", h.Assignment.Update)
				r.Delete("/", h.Assignment.Delete)
				r.Post("/check-in", h.Assignment.CheckIn)
				r.Post("/check-out", h.Assignment.CheckOut)
				r.Put("/attendance", h.Assignment.SetAttendance)
				r.Get("/payslip", h.Report.Payslip)
			})

			r.Get("/payroll/summary", h.Payroll.PeriodSummary)
			r.Get("/calendar/{year}/{month}", h.Event.Calendar)
		})
	})

	return r
}
