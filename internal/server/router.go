// Package server assembles the HTTP router and runs the HTTP server.
package server

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/career-toolkit/docs"
	"github.com/sbilibin2017/career-toolkit/internal/handlers"
	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
)

// AuthService is everything the auth routes need from the auth service.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.PasswordChanger
	middlewares.AccountResolver
}

// ProfileService is everything the profile routes need from the profile service.
type ProfileService interface {
	handlers.ProfileGetter
	handlers.ProfileUpdater
}

// Options configures NewRouter.
type Options struct {
	AppName        string
	AllowedOrigins []string
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// NewRouter wires every route of the service.
func NewRouter(opts Options, tokener middlewares.Tokener, auth AuthService, profiles ProfileService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
		// credentials only for an explicit origin list
		AllowCredentials: !slices.Contains(opts.AllowedOrigins, "*"),
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/", handlers.NewRootHandler(opts.AppName))
	r.Get("/health", handlers.NewHealthHandler(opts.AppName))
	r.Post("/auth/register", handlers.NewRegisterHandler(auth))
	r.Post("/auth/login", handlers.NewLoginHandler(auth))

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, auth))
		r.Get("/auth/me", handlers.NewMeHandler())
		r.Put("/auth/password", handlers.NewChangePasswordHandler(auth))
		r.Get("/profile", handlers.NewGetProfileHandler(profiles))
		r.Put("/profile", handlers.NewUpdateProfileHandler(profiles))
		r.Get("/resumes", handlers.NewResumesHandler())
		r.Get("/interviews", handlers.NewInterviewsHandler())
	})

	return r
}
