package adapthttp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	adapthttp "codingevents/internal/adapter/http"
	"codingevents/internal/adapter/memory"
	"codingevents/internal/app"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (http.Handler, *memory.DB) {
	t.Helper()
	mem := memory.New()
	auth := app.NewAuthService(mem, mem.NewSessionRepo())
	events := app.NewEventService(mem)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return adapthttp.New(auth, events, logger, nil, nil).Handler(), mem
}

func postForm(handler http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func get(handler http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func sessionCookies(t *testing.T, w *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie")
	return cookies
}

func registerForm(username, password, verify string) url.Values {
	return url.Values{
		"username":       {username},
		"password":       {password},
		"verifyPassword": {verify},
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	handler, mem := newTestServer(t)
	ctx := context.Background()

	// Register alice and land on the home page with a bound session.
	w := postForm(handler, "/register", registerForm("alice", "pw123", "pw123"), nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	cookies := sessionCookies(t, w)

	// The session resolves to the new identity.
	w = get(handler, "/events", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All Events")

	// Registering the same username again fails and creates nothing.
	w = postForm(handler, "/register", registerForm("alice", "pw456", "pw456"), nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	second, err := mem.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, second, "store must still hold exactly one alice")

	// Wrong password is rejected without a session.
	w = postForm(handler, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
	assert.Empty(t, w.Result().Cookies())

	// The right password logs in as the same identity.
	w = postForm(handler, "/login", url.Values{"username": {"alice"}, "password": {"pw123"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	sessionCookies(t, w)

	alice, err := mem.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, alice)
	assert.Equal(t, int64(1), alice.ID)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	handler, mem := newTestServer(t)

	w := postForm(handler, "/register", registerForm("alice", "pw123", "pw124"), nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")

	user, err := mem.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogin_UnknownUser(t *testing.T) {
	handler, _ := newTestServer(t)

	w := postForm(handler, "/login", url.Values{"username": {"nobody"}, "password": {"pw123"}}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
	assert.Empty(t, w.Result().Cookies())
}

func TestEventsRequireLogin(t *testing.T) {
	handler, _ := newTestServer(t)

	for _, path := range []string{"/events", "/events/create", "/events/delete"} {
		w := get(handler, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestLogout(t *testing.T) {
	handler, _ := newTestServer(t)

	w := postForm(handler, "/register", registerForm("alice", "pw123", "pw123"), nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := sessionCookies(t, w)

	// Logout invalidates the binding and expires the cookie.
	w = get(handler, "/logout", cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Negative(t, cleared[0].MaxAge)

	// The old token no longer resolves.
	w = get(handler, "/events", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// A second logout with no binding is not an error.
	w = get(handler, "/logout", cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestEventCreateAndDelete(t *testing.T) {
	handler, _ := newTestServer(t)

	w := postForm(handler, "/register", registerForm("alice", "pw123", "pw123"), nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := sessionCookies(t, w)

	// Invalid form re-renders with the field error.
	w = postForm(handler, "/events/create", url.Values{
		"name":         {"Go"},
		"contactEmail": {"org@example.com"},
		"type":         {"meetup"},
	}, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "between 3 and 50")

	// Valid form creates the event.
	w = postForm(handler, "/events/create", url.Values{
		"name":         {"Go Meetup"},
		"description":  {"Monthly meetup"},
		"contactEmail": {"org@example.com"},
		"type":         {"meetup"},
	}, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events", w.Header().Get("Location"))

	w = get(handler, "/events", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go Meetup")

	// Delete by checkbox id; unknown ids are skipped.
	w = postForm(handler, "/events/delete", url.Values{"eventIds": {"1", "999", "junk"}}, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(handler, "/events", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Go Meetup")
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	w := get(handler, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
