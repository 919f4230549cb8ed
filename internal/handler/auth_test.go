package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyet/webfolio/internal/store"
)

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: store.DefaultAdminUsername,
		Password: store.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[LoginResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, store.DefaultAdminUsername, resp.User.Username)

	// The issued token works against protected routes.
	rec = ts.do(t, http.MethodGet, "/api/auth/verify", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[VerifyResponse](t, rec).Valid)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ts := newTestServer(t)

	wrongUser := ts.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: "nobody", Password: store.DefaultAdminPassword,
	})
	wrongPass := ts.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: store.DefaultAdminUsername, Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, wrongUser.Body.String(), wrongPass.Body.String())
}

func TestLoginRateLimited(t *testing.T) {
	ts := newTestServer(t)

	bad := LoginRequest{Username: store.DefaultAdminUsername, Password: "wrong"}
	for i := 0; i < 5; i++ {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", bad)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i+1)
	}

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", bad)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/auth/me", ts.token(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The password hash must never leave the server.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), store.DefaultAdminEmail)
}

func TestChangePassword(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/change-password", token, ChangePasswordRequest{
		CurrentPassword: store.DefaultAdminPassword,
		NewPassword:     "BrandNew42!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := ts.admins.Authenticate(store.DefaultAdminUsername, "BrandNew42!")
	assert.NoError(t, err)
}

func TestChangePasswordRejectsShortAndWrong(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/change-password", token, ChangePasswordRequest{
		CurrentPassword: store.DefaultAdminPassword,
		NewPassword:     "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/auth/change-password", token, ChangePasswordRequest{
		CurrentPassword: "not-current",
		NewPassword:     "LongEnough1!",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
