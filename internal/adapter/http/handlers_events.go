package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"codingevents/internal/app"
	"codingevents/internal/domain"
)

func (s *Server) handleEventsIndex(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.List(r.Context())
	if err != nil {
		s.renderFault(w, r, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, "events_index.html", viewData{
		Title:  "All Events",
		Events: events,
	})
}

func (s *Server) handleEventCreateForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "events_create.html", viewData{
		Title: "Create Event",
		Form:  app.EventForm{Type: domain.EventTypeOther},
		Types: domain.EventTypes(),
	})
}

func (s *Server) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := app.EventForm{
		Name:         r.PostFormValue("name"),
		Description:  r.PostFormValue("description"),
		ContactEmail: r.PostFormValue("contactEmail"),
		Type:         domain.EventType(r.PostFormValue("type")),
	}

	_, err := s.events.Create(r.Context(), form)
	var verr app.ValidationErrors
	if errors.As(err, &verr) {
		s.renderPage(w, r, http.StatusUnprocessableEntity, "events_create.html", viewData{
			Title:  "Create Event",
			Errors: verr,
			Form:   form,
			Types:  domain.EventTypes(),
		})
		return
	}
	if err != nil {
		s.renderFault(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.EventsCreated.Inc()
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (s *Server) handleEventDeleteForm(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.List(r.Context())
	if err != nil {
		s.renderFault(w, r, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, "events_delete.html", viewData{
		Title:  "Delete Events",
		Events: events,
	})
}

func (s *Server) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// Unchecked boxes simply don't post; malformed values are skipped.
	var ids []int64
	for _, raw := range r.PostForm["eventIds"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	if err := s.events.Delete(r.Context(), ids); err != nil {
		s.renderFault(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.EventsDeleted.Add(float64(len(ids)))
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}
