package adapthttp

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// renderPage renders an HTML page, filling in the current user for the nav
// when the handler did not set one.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data viewData) {
	if data.User == nil {
		data.User = userFromContext(r.Context())
	}
	if err := s.render.render(w, status, page, data); err != nil {
		s.logger.WithError(err).WithField("page", page).Error("render failed")
	}
}

// renderFault logs an unrecovered fault and shows the generic error page.
func (s *Server) renderFault(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	s.renderPage(w, r, http.StatusInternalServerError, "error.html", viewData{Title: "Error"})
}
