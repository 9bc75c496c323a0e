package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter wires the route table. CORS is restricted to the single configured
// origin with credentials allowed.
func NewRouter(app *handlers.App, corsOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := middleware.RequireAuth(app.JWTSecret)
	credentialLimit := middleware.RateLimit(20, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)

		r.With(credentialLimit).Post("/signup", app.Signup)
		r.With(credentialLimit).Post("/login", app.Login)

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/bio", app.BioGet)
			r.Put("/bio", app.BioUpdate)
			r.Put("/password", app.PasswordChange)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", app.BlogsList)
			r.Post("/", app.BlogCreate)
			r.Get("/{id}", app.BlogGet)
			r.Post("/{id}/reviews", app.BlogReviewCreate)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Post("/", app.DonationCreate)
			r.With(requireAuth).Get("/", app.DonationsListByEmail)
			r.Get("/{id}", app.DonationGet)
		})

		r.Get("/opportunities", app.OpportunitiesList)
		r.Post("/volunteers", app.VolunteerCreate)
	})

	return r
}
