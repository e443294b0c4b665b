package http

import (
	"log/slog"
	"os"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/config"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/middleware"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Calculator CalculatorHandler
	Company    CompanyHandler
	Worker     WorkerHandler
	Job        JobHandler
	TimeEntry  TimeEntryHandler
	Invite     InviteHandler
	Payroll    PayrollHandler
	Analytics  AnalyticsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldcrew"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", cfg.App.BaseURL},
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

		// Public lead-generation surface; no account needed.
		r.Route("/calculator", func(r chi.Router) {
			r.Post("/leakage", h.Calculator.Calculate)
			r.Get("/sample-report", h.Calculator.SampleReport)
		})
		r.Post("/leads", h.Calculator.CaptureLead)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// The magic-link token is the credential here, not a JWT.
		r.Post("/invites/accept", h.Invite.AcceptInvite)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Shift tracking is the one surface worker accounts use.
			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", h.TimeEntry.ClockIn)
				r.Post("/{id}/clock-out", h.TimeEntry.ClockOut)
				r.Get("/{id}", h.TimeEntry.GetTimeEntry)
				r.Get("/", h.TimeEntry.ListTimeEntries)
			})

			// Owner only: wages, invites, payroll and the money dashboards.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Route("/companies/{id}", func(r chi.Router) {
					r.Get("/", h.Company.GetCompany)
					r.Put("/", h.Company.UpdateCompany)
				})

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", h.Worker.ListWorkers)
					r.Post("/", h.Worker.CreateWorker)
					r.Get("/{id}", h.Worker.GetWorker)
					r.Put("/{id}", h.Worker.UpdateWorker)
					r.Delete("/{id}", h.Worker.DeleteWorker)
				})

				r.Route("/jobs", func(r chi.Router) {
					r.Get("/", h.Job.ListJobs)
					r.Post("/", h.Job.CreateJob)
					r.Get("/{id}", h.Job.GetJob)
					r.Put("/{id}", h.Job.UpdateJob)
					r.Delete("/{id}", h.Job.DeleteJob)
				})

				r.Route("/job-types", func(r chi.Router) {
					r.Get("/", h.Job.ListJobTypes)
					r.Post("/", h.Job.CreateJobType)
				})

				r.Route("/invites", func(r chi.Router) {
					r.Get("/", h.Invite.ListInvites)
					r.Post("/", h.Invite.CreateInvite)
					r.Post("/{workerID}/resend", h.Invite.ResendInvite)
					r.Delete("/{workerID}", h.Invite.RevokeInvite)
				})

				r.Get("/payroll/export", h.Payroll.ExportWeekCSV)

				r.Route("/analytics", func(r chi.Router) {
					r.Get("/recovery", h.Analytics.RecoveryDashboard)
					r.Get("/labour-cost-trend", h.Analytics.LabourCostTrend)
					r.Get("/rplh-trend", h.Analytics.RPLHTrend)
					r.Get("/time-allocation", h.Analytics.TimeAllocation)
				})
			})
		})
	})
	return r
}
