package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/openhrms/leave-ledger-go/internal/handler/http/middleware"
	"github.com/openhrms/leave-ledger-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	balanceHandler BalanceHandler,
	compOffHandler CompOffHandler,
	permissionHandler PermissionHandler,
	leaveTypeHandler LeaveTypeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-ledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/balances", func(r chi.Router) {
				r.Get("/details", balanceHandler.Details)
				r.Get("/summary", balanceHandler.Summary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/close", balanceHandler.CloseMonth)
					r.Post("/reopen", balanceHandler.ReopenMonth)
					r.Post("/seed", balanceHandler.SeedBalance)
				})
			})

			r.Route("/comp-offs", func(r chi.Router) {
				r.Get("/", compOffHandler.List)
				r.Post("/", compOffHandler.Create)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", compOffHandler.Approve)
					r.Post("/{id}/reject", compOffHandler.Reject)
					r.Delete("/{id}", compOffHandler.Delete)
				})
			})

			r.Get("/leave-types", leaveTypeHandler.ListTypes)

			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", permissionHandler.List)
				r.Post("/", permissionHandler.Create)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", permissionHandler.Delete)
				})
			})
		})
	})
	return r
}
