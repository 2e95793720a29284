package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the plot-listing API.
//
// Public routes cover browsing plots, the inquiry and registration
// forms, login, and the content-generation endpoints. Everything that
// mutates plots, contacts, or users, and every dashboard read, sits
// behind bearer-token authentication with the Owner role.
func NewRouter(
	plots *PlotHandler,
	auth *AuthHandler,
	users *UserHandler,
	contacts *ContactHandler,
	registrations *RegistrationHandler,
	inquiries *InquiryHandler,
	generation *AIHandler,
	meta *MetaHandler,
	staleViews *ViewsHandler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata; recover from handler panics.
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/plots", plots.List)
		r.Get("/plots/{id}", plots.Get)
		r.Post("/inquiries", inquiries.Create)
		r.Post("/registrations", registrations.Create)
		r.Post("/auth/login", auth.Login)
		r.Get("/meta/options", meta.Options)

		r.Route("/ai", func(r chi.Router) {
			r.Post("/market-insights", generation.MarketInsights)
			r.Post("/describe", generation.Describe)
			r.Post("/vastu", generation.Vastu)
			r.Post("/amenities", generation.Amenities)
			r.Post("/site-plan", generation.SitePlan)
			r.Post("/visualize", generation.Visualize)
		})

		// Authenticated group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(tokens))

			r.Post("/auth/change-password", auth.ChangePassword)

			// Owner group: the dashboard surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Post("/plots", plots.Create)
				r.Put("/plots/{id}", plots.Update)
				r.Delete("/plots/{id}", plots.Delete)

				r.Get("/contacts", contacts.List)
				r.Post("/contacts", contacts.Create)
				r.Get("/contacts/{id}", contacts.Get)
				r.Put("/contacts/{id}", contacts.Update)
				r.Delete("/contacts/{id}", contacts.Delete)

				r.Get("/inquiries", inquiries.List)

				r.Get("/registrations", registrations.List)
				r.Get("/registrations/new-count", registrations.NewCount)
				r.Post("/registrations/mark-read", registrations.MarkRead)

				r.Get("/users", users.List)
				r.Post("/users", users.Create)
				r.Delete("/users/{id}", users.Delete)
				r.Post("/users/{id}/password", users.SetPassword)

				r.Post("/views/refresh", staleViews.Refresh)
			})
		})
	})

	return r
}
