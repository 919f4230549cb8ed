// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rubyet/webfolio/internal/model"
)

// SubmitContact handles POST /api/contacts, the public contact form.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub model.ContactSubmission
	if !decodeJSON(w, r, &sub) {
		return
	}
	if err := h.validate.Struct(sub); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	contact, err := h.contacts.Create(sub)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("contact message received", "id", contact.ID)
	WriteCreated(w, contact)
}

// ListContacts handles GET /api/contacts?filter=unread|read|all.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = "all"
	}
	WriteSuccess(w, h.contacts.ListByStatus(filter))
}

// ContactStatistics handles GET /api/contacts/stats.
func (h *Handler) ContactStatistics(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, h.contacts.Statistics())
}

// GetContact handles GET /api/contacts/{id}.
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact)
}

// UpdateContact handles PUT /api/contacts/{id}, typically marking a
// message read.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch model.ContactPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if err := h.validate.Struct(patch); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	contact, err := h.contacts.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact)
}

// DeleteContact handles DELETE /api/contacts/{id}.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Delete(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]string{"message": "Contact deleted successfully"})
}
