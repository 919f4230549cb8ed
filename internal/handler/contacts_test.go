package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyet/webfolio/internal/model"
)

func TestSubmitContact(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/contacts", "", model.ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "A message",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	contact := decode[model.Contact](t, rec)
	assert.Equal(t, model.ContactStatusUnread, contact.Status)
	assert.NotEmpty(t, contact.ID)
}

func TestSubmitContactValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/contacts", "", model.ContactSubmission{
		Name:    "Ada",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "A message",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[ErrorResponse](t, rec).Error.Details, "Email")
}

func TestContactAdminFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/api/contacts", "", model.ContactSubmission{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "A message",
	})
	contact := decode[model.Contact](t, rec)

	// Listing requires auth.
	rec = ts.do(t, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/contacts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Contact](t, rec), 1)

	// Mark read.
	read := model.ContactStatusRead
	rec = ts.do(t, http.MethodPut, "/api/contacts/"+contact.ID, token, model.ContactPatch{Status: &read})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ContactStatusRead, decode[model.Contact](t, rec).Status)

	// Stats reflect the change.
	rec = ts.do(t, http.MethodGet, "/api/contacts/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[model.ContactStatistics](t, rec)
	assert.Equal(t, model.ContactStatistics{Total: 1, Unread: 0, Read: 1}, stats)

	// Delete.
	rec = ts.do(t, http.MethodDelete, "/api/contacts/"+contact.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/contacts/"+contact.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
