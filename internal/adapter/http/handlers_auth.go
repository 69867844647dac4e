package adapthttp

import (
	"errors"
	"net/http"

	"codingevents/internal/app"
)

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "register.html", viewData{
		Title:      "Register",
		SSOEnabled: s.sso != nil,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := app.RegisterForm{
		Username:       r.PostFormValue("username"),
		Password:       r.PostFormValue("password"),
		VerifyPassword: r.PostFormValue("verifyPassword"),
	}

	user, err := s.auth.Register(r.Context(), form)
	var verr app.ValidationErrors
	if errors.As(err, &verr) {
		s.renderPage(w, r, http.StatusUnprocessableEntity, "register.html", viewData{
			Title:      "Register",
			Errors:     verr,
			Username:   form.Username,
			SSOEnabled: s.sso != nil,
		})
		return
	}
	if err != nil {
		s.renderFault(w, r, err)
		return
	}

	if err := s.bindSession(r.Context(), w, r, user.ID); err != nil {
		s.renderFault(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "login.html", viewData{
		Title:      "Log In",
		SSOEnabled: s.sso != nil,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := app.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := s.auth.Login(r.Context(), form)
	var verr app.ValidationErrors
	if errors.As(err, &verr) {
		if s.metrics != nil {
			s.metrics.LoginsFailed.Inc()
		}
		s.renderPage(w, r, http.StatusUnprocessableEntity, "login.html", viewData{
			Title:      "Log In",
			Errors:     verr,
			Username:   form.Username,
			SSOEnabled: s.sso != nil,
		})
		return
	}
	if err != nil {
		s.renderFault(w, r, err)
		return
	}

	if err := s.bindSession(r.Context(), w, r, user.ID); err != nil {
		s.renderFault(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.LoginsSucceeded.Inc()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(r.Context(), w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
