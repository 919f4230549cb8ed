package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rubyet/webfolio/internal/ai"
	"github.com/rubyet/webfolio/internal/auth"
	"github.com/rubyet/webfolio/internal/middleware"
	"github.com/rubyet/webfolio/internal/store"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// testServer bundles the wired application for handler tests.
type testServer struct {
	handler http.Handler
	posts   *store.PostStore
	admins  *store.AdminStore
	issuer  *auth.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, store.EnsureDataDir(dir))

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	posts := store.NewPostStore(dir, time.Minute, log)
	contacts := store.NewContactStore(dir, log)
	admins := store.NewAdminStore(dir, log)
	require.NoError(t, admins.Bootstrap())

	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	login := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		MaxAttempts: 5,
		Window:      15 * time.Minute,
	}, log)

	h := New(Options{
		Posts:    posts,
		Contacts: contacts,
		Admins:   admins,
		Issuer:   issuer,
		AI:       ai.NewService(ai.Options{}, log),
		Login:    login,
		Env:      "test",
		Logger:   log,
	})

	return &testServer{
		handler: h.Routes(),
		posts:   posts,
		admins:  admins,
		issuer:  issuer,
	}
}

// token issues a valid admin token for authenticated requests.
func (ts *testServer) token(t *testing.T) string {
	t.Helper()
	token, err := ts.issuer.Issue(store.DefaultAdminUsername, store.DefaultAdminEmail, "admin")
	require.NoError(t, err)
	return token
}

// do runs one request against the wired router. A non-empty token is
// sent as a Bearer credential; body is JSON-encoded when non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
