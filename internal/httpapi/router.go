package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Routes builds the HTTP router: the authentication surface, the guarded
// /gateway/* proxy, and the /ws/* splice. Rate limiting applies to every
// route; the bearer/authorization chain only to /gateway/*.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CorrelationMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}).Handler)
	r.Use(s.Limiter.Middleware)

	// Health check (unauthenticated)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})

	r.Post("/authentication/login", s.Login)
	r.Post("/authentication/register", s.Register)

	r.Group(func(r chi.Router) {
		r.Use(s.BearerAuth)

		r.Post("/authentication/renew/token", s.RenewToken)
		r.Get("/authentication/keys/public_key", s.PublicKey)
		r.Get("/administration/users/get_current_user", s.GetCurrentUser)

		r.Route("/gateway", func(r chi.Router) {
			r.Get("/*", s.ProxyHTTP)
			r.Post("/*", s.ProxyHTTP)
			r.Put("/*", s.ProxyHTTP)
			r.Delete("/*", s.ProxyHTTP)
		})
	})

	r.Get("/ws/*", s.ProxyWS)

	log.Info().Msg("HTTP routes registered")
	return r
}
