// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/rubyet/webfolio/internal/ai"
	"github.com/rubyet/webfolio/internal/auth"
	"github.com/rubyet/webfolio/internal/middleware"
	"github.com/rubyet/webfolio/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	posts    *store.PostStore
	contacts *store.ContactStore
	admins   *store.AdminStore
	issuer   *auth.TokenIssuer
	ai       *ai.Service
	login    *middleware.LoginProtection
	validate *validator.Validate
	log      *slog.Logger

	env       string
	startTime time.Time
}

// Options collects the collaborators a Handler needs.
type Options struct {
	Posts    *store.PostStore
	Contacts *store.ContactStore
	Admins   *store.AdminStore
	Issuer   *auth.TokenIssuer
	AI       *ai.Service
	Login    *middleware.LoginProtection
	Env      string
	Logger   *slog.Logger
}

// New creates an API handler.
func New(opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		posts:     opts.Posts,
		contacts:  opts.Contacts,
		admins:    opts.Admins,
		issuer:    opts.Issuer,
		ai:        opts.AI,
		login:     opts.Login,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
		env:       opts.Env,
		startTime: time.Now(),
	}
}

// Routes mounts the full API surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))

	requireAuth := middleware.RequireAuth(h.issuer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/statistics", h.Statistics)
		r.Get("/tags", h.Tags)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.Get("/search", h.SearchPosts)
			r.Get("/tag/{tag}", h.PostsByTag)
			r.Get("/id/{id}", h.GetPostByID)
			r.Get("/slug/{slug}", h.GetPostBySlug)
			r.Get("/{id}/related", h.RelatedPosts)
			r.Post("/{id}/view", h.IncrementPostViews)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.CreatePost)
				r.Put("/{id}", h.UpdatePost)
				r.Delete("/{id}", h.DeletePost)
			})
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", h.SubmitContact)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/", h.ListContacts)
				r.Get("/stats", h.ContactStatistics)
				r.Get("/{id}", h.GetContact)
				r.Put("/{id}", h.UpdateContact)
				r.Delete("/{id}", h.DeleteContact)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(h.login.Middleware()).Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/verify", h.Verify)
				r.Get("/me", h.Me)
				r.Post("/change-password", h.ChangePassword)
			})
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/improve-title", h.ImproveTitle)
			r.Post("/generate-excerpt", h.GenerateExcerpt)
			r.Post("/help-content", h.HelpContent)
			r.Post("/suggest-tags", h.SuggestTags)
			r.Post("/generate-seo", h.GenerateSEO)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/export", h.ExportPosts)
			r.Post("/import", h.ImportPosts)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	return r
}

// validationDetails flattens validator errors into a field -> message map.
func (h *Handler) validationDetails(err error) map[string]string {
	details := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
