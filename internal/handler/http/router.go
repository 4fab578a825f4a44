package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/clockin-app/clockin-backend-go/internal/handler/http/middleware"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	kioskHandler KioskHandler,
	tenantHandler TenantHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	punchHandler PunchHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clockin-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Kiosk endpoints are unauthenticated; the PIN is the credential
		r.Route("/kiosk", func(r chi.Router) {
			r.Post("/punch", kioskHandler.Punch)
			r.Post("/status", kioskHandler.Status)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/tenant", func(r chi.Router) {
				r.Get("/", tenantHandler.GetMyTenant)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", tenantHandler.GetSettings)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Put("/", tenantHandler.UpdateSettings)
					})
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/punches", punchHandler.ListForEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})

				// Deactivation hides the employee everywhere; owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/offices", func(r chi.Router) {
				r.Get("/", masterHandler.ListOffices)
				r.Get("/{id}", masterHandler.GetOffice)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", masterHandler.CreateOffice)
					r.Put("/{id}", masterHandler.UpdateOffice)
					r.Delete("/{id}", masterHandler.DeleteOffice)
				})
			})

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", masterHandler.ListGroups)
				r.Get("/{id}", masterHandler.GetGroup)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", masterHandler.CreateGroup)
					r.Put("/{id}", masterHandler.UpdateGroup)
					r.Delete("/{id}", masterHandler.DeleteGroup)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", punchHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/{id}", punchHandler.Edit)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Put("/{id}/read", notificationHandler.MarkRead)
				r.Put("/read-all", notificationHandler.MarkAllRead)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/hours", reportHandler.Hours)
				r.Get("/payroll", reportHandler.Payroll)
			})
		})
	})
	return r
}
