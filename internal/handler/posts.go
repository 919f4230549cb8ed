// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rubyet/webfolio/internal/model"
	"github.com/rubyet/webfolio/internal/util"
)

// ListPosts handles GET /api/posts?filter=published|draft|all.
// The default filter is published so the public site never sees drafts.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = model.PostStatusPublished
	}
	WriteSuccess(w, h.posts.ListByStatus(filter))
}

// SearchPosts handles GET /api/posts/search?q=&status=.
func (h *Handler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteBadRequest(w, "Query parameter q is required", nil)
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		status = model.PostStatusPublished
	}
	WriteSuccess(w, h.posts.Search(query, status))
}

// PostsByTag handles GET /api/posts/tag/{tag}.
func (h *Handler) PostsByTag(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.posts.FindByTag(chi.URLParam(r, "tag")))
}

// GetPostByID handles GET /api/posts/id/{id}.
func (h *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, post)
}

// GetPostBySlug handles GET /api/posts/slug/{slug}.
func (h *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		WriteNotFound(w, "Resource not found")
		return
	}

	post, err := h.posts.GetBySlug(slug)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, post)
}

// RelatedPosts handles GET /api/posts/{id}/related?limit=.
func (h *Handler) RelatedPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	related, err := h.posts.FindRelated(chi.URLParam(r, "id"), limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, related)
}

// ViewCountResponse carries the updated view counter.
type ViewCountResponse struct {
	Views int `json:"views"`
}

// IncrementPostViews handles POST /api/posts/{id}/view.
func (h *Handler) IncrementPostViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.posts.IncrementViews(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, ViewCountResponse{Views: views})
}

// CreatePost handles POST /api/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft model.PostDraft
	if !decodeJSON(w, r, &draft) {
		return
	}
	if err := h.validate.Struct(draft); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	post, err := h.posts.Create(draft)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("post created", "id", post.ID, "slug", post.Slug)
	WriteCreated(w, post)
}

// UpdatePost handles PUT /api/posts/{id}.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var patch model.PostPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if err := h.validate.Struct(patch); err != nil {
		WriteValidationError(w, h.validationDetails(err))
		return
	}

	post, err := h.posts.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("post updated", "id", post.ID, "slug", post.Slug)
	WriteSuccess(w, post)
}

// DeletePost handles DELETE /api/posts/{id}.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.posts.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}

	h.log.Info("post deleted", "id", id)
	WriteSuccess(w, map[string]string{"message": "Post deleted successfully"})
}
