// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer implements post collection export and import for
// backups and migrations between instances.
package transfer

import (
	"fmt"
	"time"

	"github.com/rubyet/webfolio/internal/model"
	"github.com/rubyet/webfolio/internal/store"
)

// FormatVersion identifies the export payload layout. Imports accept
// payloads with the same version or none (legacy exports).
const FormatVersion = 1

// ExportData is the payload served by GET /api/export and accepted by
// POST /api/import.
type ExportData struct {
	Version    int          `json:"version"`
	ExportedAt string       `json:"exportedAt"`
	Posts      []model.Post `json:"posts"`
}

// Export snapshots the whole post collection.
func Export(posts *store.PostStore) ExportData {
	return ExportData{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Posts:      posts.List(),
	}
}

// Import validates the payload and replaces the post collection with
// its posts. Returns the number of posts imported.
func Import(posts *store.PostStore, data ExportData) (int, error) {
	if data.Version != 0 && data.Version != FormatVersion {
		return 0, fmt.Errorf("%w: unsupported export version %d", store.ErrValidation, data.Version)
	}
	if data.Posts == nil {
		return 0, fmt.Errorf("%w: posts array is required", store.ErrValidation)
	}
	for i, p := range data.Posts {
		if p.ID == "" {
			return 0, fmt.Errorf("%w: post %d has no id", store.ErrValidation, i)
		}
		if p.Title == "" {
			return 0, fmt.Errorf("%w: post %d has no title", store.ErrValidation, i)
		}
	}

	if err := posts.ReplaceAll(data.Posts); err != nil {
		return 0, err
	}
	return len(data.Posts), nil
}
