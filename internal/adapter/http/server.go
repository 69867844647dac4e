// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"codingevents/internal/app"
	"codingevents/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server is the driving HTTP adapter that routes requests to application
// services and renders HTML pages.
type Server struct {
	auth    *app.AuthService
	events  *app.EventService
	logger  *logrus.Logger
	metrics *metrics.Metrics
	render  *renderer
	sso     *SSO
}

// New creates a Server wired to the given application services. metrics and
// sso may be nil to disable the corresponding features.
func New(auth *app.AuthService, events *app.EventService, logger *logrus.Logger, m *metrics.Metrics, sso *SSO) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		auth:    auth,
		events:  events,
		logger:  logger,
		metrics: m,
		render:  newRenderer(),
		sso:     sso,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/events", http.StatusFound)
	})

	r.Get("/register", s.handleRegisterForm)
	r.Post("/register", s.handleRegister)
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)
	r.Get("/logout", s.handleLogout)
	r.Post("/logout", s.handleLogout)

	if s.sso != nil {
		r.Get("/auth/sso/login", s.handleSSOLogin)
		r.Get("/auth/sso/callback", s.handleSSOCallback)
	}

	r.Route("/events", func(r chi.Router) {
		r.Use(s.requireUser)
		r.Get("/", s.handleEventsIndex)
		r.Get("/create", s.handleEventCreateForm)
		r.Post("/create", s.handleEventCreate)
		r.Get("/delete", s.handleEventDeleteForm)
		r.Post("/delete", s.handleEventDelete)
	})

	return r
}
