// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
)

// ImproveTitleRequest is the POST /api/ai/improve-title body.
type ImproveTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// ImproveTitleResponse pairs the original title with the suggestion.
type ImproveTitleResponse struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

// ImproveTitle handles POST /api/ai/improve-title.
func (h *Handler) ImproveTitle(w http.ResponseWriter, r *http.Request) {
	var req ImproveTitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	WriteSuccess(w, ImproveTitleResponse{
		Original: req.Title,
		Improved: h.ai.ImproveTitle(r.Context(), req.Title),
	})
}

// GenerateExcerptRequest is the POST /api/ai/generate-excerpt body.
type GenerateExcerptRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GenerateExcerpt handles POST /api/ai/generate-excerpt.
func (h *Handler) GenerateExcerpt(w http.ResponseWriter, r *http.Request) {
	var req GenerateExcerptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	excerpt := h.ai.GenerateExcerpt(r.Context(), req.Title, req.Content)
	WriteSuccess(w, map[string]string{"excerpt": excerpt})
}

// HelpContentRequest is the POST /api/ai/help-content body.
type HelpContentRequest struct {
	Topic          string `json:"topic" validate:"required"`
	CurrentContent string `json:"currentContent"`
}

// HelpContent handles POST /api/ai/help-content.
func (h *Handler) HelpContent(w http.ResponseWriter, r *http.Request) {
	var req HelpContentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	content := h.ai.HelpWithContent(r.Context(), req.Topic, req.CurrentContent)
	WriteSuccess(w, map[string]string{"content": content})
}

// SuggestTagsRequest is the POST /api/ai/suggest-tags body.
type SuggestTagsRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// SuggestTags handles POST /api/ai/suggest-tags.
func (h *Handler) SuggestTags(w http.ResponseWriter, r *http.Request) {
	var req SuggestTagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	tags := h.ai.SuggestTags(r.Context(), req.Title, req.Content)
	WriteSuccess(w, map[string]any{"tags": tags})
}

// GenerateSEORequest is the POST /api/ai/generate-seo body.
type GenerateSEORequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Excerpt string `json:"excerpt"`
}

// GenerateSEO handles POST /api/ai/generate-seo.
func (h *Handler) GenerateSEO(w http.ResponseWriter, r *http.Request) {
	var req GenerateSEORequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	WriteSuccess(w, h.ai.GenerateSEO(r.Context(), req.Title, req.Content, req.Excerpt))
}
