package adapthttp

import (
	"context"
	"net/http"

	"codingevents/internal/domain"
)

// sessionCookieName is an implementation detail of this adapter; everything
// else goes through bindSession, currentUser, and clearSession.
const sessionCookieName = "session"

// bindSession creates a session for the user and sets the session cookie.
func (s *Server) bindSession(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64) error {
	token, err := s.auth.CreateSession(ctx, userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400,
	})
	return nil
}

// currentUser resolves the request's session cookie to a user. It returns
// (nil, nil) for unauthenticated requests and never mutates state beyond the
// session store's own expiry handling.
func (s *Server) currentUser(r *http.Request) (*domain.User, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, nil
	}
	return s.auth.CurrentUser(r.Context(), cookie.Value)
}

// clearSession destroys the session binding and expires the cookie.
// Idempotent: clearing with no active session is a no-op.
func (s *Server) clearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		_ = s.auth.Logout(ctx, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
