package adapthttp

import (
	"embed"
	"html/template"
	"net/http"

	"codingevents/internal/app"
	"codingevents/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer holds one parsed template set per page, each combined with the
// shared layout.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	pages := make(map[string]*template.Template)
	for _, name := range []string{
		"register.html",
		"login.html",
		"events_index.html",
		"events_create.html",
		"events_delete.html",
		"error.html",
	} {
		pages[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html", "templates/"+name))
	}
	return &renderer{pages: pages}
}

// viewData is the data passed to every page template. Unused fields stay at
// their zero value.
type viewData struct {
	Title      string
	User       *domain.User
	Errors     app.ValidationErrors
	Username   string
	Form       app.EventForm
	Events     []domain.Event
	Types      []domain.EventType
	SSOEnabled bool
}

func (r *renderer) render(w http.ResponseWriter, status int, page string, data viewData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
