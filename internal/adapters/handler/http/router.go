package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups everything the router mounts. Auth, Users and Content may
// be nil, in which case their routes are not registered.
type Handlers struct {
	Sessions *SessionHandler
	Content  *ContentHandler
	Auth     *AuthHandler
	Users    *UserHandler
}

func NewHandler(h Handlers, jwtSecret string, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Refresh-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := Authenticate(jwtSecret)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	if h.Auth != nil {
		r.Route("/oauth", func(r chi.Router) {
			r.Post("/anonymous", h.Auth.Anonymous)
			r.Post("/callback", h.Auth.GoogleCallback)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.Sessions.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Sessions.GetSession)
				r.Delete("/", h.Sessions.DeleteSession)
				r.Put("/votes", h.Sessions.CastVote)
				r.Delete("/votes/{player}", h.Sessions.ClearVote)
				r.Post("/reveal", h.Sessions.Reveal)
				r.Post("/rounds", h.Sessions.NextRound)
				r.Post("/restart", h.Sessions.Restart)
				r.Get("/standings", h.Sessions.Standings)
			})
		})

		if h.Content != nil {
			r.Route("/pairs", func(r chi.Router) {
				r.Get("/", h.Content.ListPairs)
				r.Get("/random", h.Content.RandomPair)
				r.Get("/{id}", h.Content.GetPair)
				r.With(requireAuth).Post("/", h.Content.CreatePair)
				r.With(requireAuth).Delete("/{id}", h.Content.DeletePair)
			})

			r.Route("/themes", func(r chi.Router) {
				r.Get("/", h.Content.ListThemes)
				r.Get("/{id}", h.Content.GetTheme)
				r.With(requireAuth).Post("/", h.Content.CreateTheme)
				r.With(requireAuth).Delete("/{id}", h.Content.DeleteTheme)
			})

			r.Route("/questions", func(r chi.Router) {
				r.Get("/", h.Content.ListQuestions)
				r.With(requireAuth).Post("/", h.Content.CreateQuestion)
				r.With(requireAuth).Delete("/{id}", h.Content.DeleteQuestion)
			})
		}

		if h.Users != nil {
			r.With(requireAuth).Get("/me", h.Users.GetMe)
			r.With(requireAuth).Patch("/me", h.Users.UpdateMe)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})

	return r
}
