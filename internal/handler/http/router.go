package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/hr-portal-go/internal/config"
	"github.com/worklens/hr-portal-go/internal/handler/http/middleware"
	"github.com/worklens/hr-portal-go/internal/handler/http/response"
	"github.com/worklens/hr-portal-go/internal/pkg/routing"
	"github.com/worklens/hr-portal-go/internal/pkg/token"
)

func NewRouter(
	cfg *config.Config,
	verifier *token.Verifier,
	table *routing.Table,
	matcher *routing.Matcher,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	authzHandler AuthzHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
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
			r.Use(jwtauth.Verifier(verifier.JWTAuth()))
			r.Use(middleware.AuthRequired(verifier.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", attendanceHandler.Status)
				r.Post("/clock", attendanceHandler.Clock)
				r.Get("/timesheet", attendanceHandler.Timesheet)
				r.Get("/time-slots", attendanceHandler.TimeSlots)

				r.Route("/edit-requests", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListEditRequests)
					r.Post("/", attendanceHandler.SubmitEditRequest)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", leaveHandler.Balance)
			})

			r.Route("/authz", func(r chi.Router) {
				r.Get("/evaluate", authzHandler.Evaluate)
			})
		})
	})

	// Page navigations. The matcher decides which paths are intercepted;
	// allowed ones resolve through the rewrite table to the serving module.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(verifier.JWTAuth()))
		r.Use(middleware.Authorize(matcher, cfg.Portal.ESignEnabled))

		r.Get("/*", resolvePage(table))
	})

	return r
}

// resolvePage answers an authorized navigation with the internal module path
// that serves it.
func resolvePage(table *routing.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"path":     r.URL.Path,
			"resolved": table.Rewrite(r.URL.Path),
		})
	}
}
