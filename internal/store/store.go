// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists blog posts, contact submissions, and the admin
// credential record as flat JSON files on disk. Stores are explicit structs
// constructed once at startup and injected into handlers.
//
// Concurrency model: each store serializes its own mutations with a mutex,
// so compound read-modify-write operations are atomic within the process.
// Two processes sharing a data directory race at the file-system level and
// the last writer wins; that is an accepted limitation of the
// file-as-database design.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a lookup by id or slug yields nothing.
// It is an expected outcome for read paths, not an exceptional one.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a write carries a missing or invalid
// required field. Surfaced to the caller, never retried.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is the single generic failure for a bad username
// or a bad password, deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// File names within the data directory.
const (
	PostsFileName    = "posts.json"
	ContactsFileName = "contacts.json"
	AdminFileName    = "admin.json"
)

// readJSONFile decodes a JSON array file into a slice. A missing,
// unreadable, or unparseable file degrades to an empty slice so read paths
// stay available; the caller is expected to log the returned warning error.
func readJSONFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []T{}, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// writeJSONFile persists a slice as an indented JSON array. A failure means
// the operation did not complete; nothing on disk is guaranteed either way.
func writeJSONFile[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// EnsureDataDir creates the data directory and initializes any missing
// collection files with empty arrays. The admin file is left to
// AdminStore.Bootstrap.
func EnsureDataDir(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	for _, name := range []string{PostsFileName, ContactsFileName} {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("initializing %s: %w", name, err)
		}
	}
	return nil
}
