// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/rubyet/webfolio/internal/transfer"
)

// Statistics handles GET /api/statistics, the dashboard summary.
func (h *Handler) Statistics(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, h.posts.Statistics())
}

// Tags handles GET /api/tags, tag usage counts across published posts.
func (h *Handler) Tags(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, h.posts.TagCounts())
}

// ExportPosts handles GET /api/export, a downloadable snapshot of the
// post collection.
func (h *Handler) ExportPosts(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="posts-export.json"`)
	WriteSuccess(w, transfer.Export(h.posts))
}

// ImportResponse reports how many posts an import installed.
type ImportResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ImportPosts handles POST /api/import. The imported posts replace the
// whole collection.
func (h *Handler) ImportPosts(w http.ResponseWriter, r *http.Request) {
	var data transfer.ExportData
	if !decodeJSON(w, r, &data) {
		return
	}

	count, err := transfer.Import(h.posts, data)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("posts imported", "count", count)
	WriteSuccess(w, ImportResponse{Message: "Posts imported successfully", Count: count})
}
