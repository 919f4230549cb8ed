// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/rubyet/webfolio/internal/middleware"
	"github.com/rubyet/webfolio/internal/model"
)

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the public admin profile.
type LoginResponse struct {
	Token string            `json:"token"`
	User  model.PublicAdmin `json:"user"`
}

// Login handles POST /api/auth/login. Unknown usernames and wrong
// passwords produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	admin, err := h.admins.Authenticate(req.Username, req.Password)
	if err != nil {
		h.log.Warn("login failed", "username", req.Username)
		writeStoreError(w, err)
		return
	}

	token, err := h.issuer.Issue(admin.Username, admin.Email, admin.Role)
	if err != nil {
		h.log.Error("issuing token", "error", err)
		WriteInternalError(w, "Internal server error")
		return
	}

	if h.login != nil {
		// Clear with the same key the limiter middleware tracks by.
		h.login.Reset(middleware.ClientIP(r))
	}
	h.log.Info("login succeeded", "username", admin.Username)
	WriteSuccess(w, LoginResponse{Token: token, User: admin.Public()})
}

// VerifyResponse reports a valid token back to the caller.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

// Verify handles GET /api/auth/verify. Reaching it at all means the
// token passed the auth middleware.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	WriteSuccess(w, VerifyResponse{Valid: true, Username: claims.Username})
}

// Me handles GET /api/auth/me, returning the public admin profile.
func (h *Handler) Me(w http.ResponseWriter, _ *http.Request) {
	admin, err := h.admins.Get()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, admin.Public())
}

// ChangePasswordRequest is the POST /api/auth/change-password body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ChangePassword handles POST /api/auth/change-password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	if err := h.admins.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("admin password changed")
	WriteSuccess(w, map[string]string{"message": "Password changed successfully"})
}
