// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rubyet/webfolio/internal/model"
)

// ContactStore persists contact-form submissions to a JSON file. Unlike
// PostStore it is uncached: every call re-reads from disk.
type ContactStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex // serializes mutations
}

// NewContactStore creates a contact store backed by contacts.json in dataDir.
func NewContactStore(dataDir string, log *slog.Logger) *ContactStore {
	if log == nil {
		log = slog.Default()
	}
	return &ContactStore{
		path: filepath.Join(dataDir, ContactsFileName),
		log:  log,
	}
}

// List returns all persisted contacts. Read failures degrade to an empty
// collection and are logged.
func (s *ContactStore) List() []model.Contact {
	contacts, err := readJSONFile[model.Contact](s.path)
	if err != nil {
		s.log.Warn("reading contacts degraded to empty collection", "error", err)
	}
	return contacts
}

// GetByID returns the contact with the given id, or ErrNotFound.
func (s *ContactStore) GetByID(id string) (*model.Contact, error) {
	for _, c := range s.List() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// ListByStatus returns contacts filtered to "read" or "unread" (any other
// status means all), sorted by submittedAt descending.
func (s *ContactStore) ListByStatus(status string) []model.Contact {
	contacts := s.List()

	switch status {
	case model.ContactStatusRead, model.ContactStatusUnread:
		filtered := contacts[:0]
		for _, c := range contacts {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].SubmittedTime().After(contacts[j].SubmittedTime())
	})
	return contacts
}

// Create stores a new submission with a fresh id, the current timestamp,
// and unread status.
func (s *ContactStore) Create(sub model.ContactSubmission) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := model.Contact{
		ID:          uuid.NewString(),
		Name:        sub.Name,
		Email:       sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Status:      model.ContactStatusUnread,
	}

	contacts := append(s.List(), contact)
	if err := s.save(contacts); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update merges the patch over the stored contact. The id is immutable.
func (s *ContactStore) Update(id string, patch model.ContactPatch) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.List()
	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		patch.Apply(&contacts[i])
		contacts[i].ID = id
		if err := s.save(contacts); err != nil {
			return nil, err
		}
		updated := contacts[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete removes the contact with the given id, returning ErrNotFound when
// the id is absent.
func (s *ContactStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.List()
	remaining := contacts[:0]
	for _, c := range contacts {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(contacts) {
		return ErrNotFound
	}
	return s.save(remaining)
}

// Statistics summarizes the contact collection.
func (s *ContactStore) Statistics() model.ContactStatistics {
	stats := model.ContactStatistics{}
	for _, c := range s.List() {
		stats.Total++
		switch c.Status {
		case model.ContactStatusUnread:
			stats.Unread++
		case model.ContactStatusRead:
			stats.Read++
		}
	}
	return stats
}

func (s *ContactStore) save(contacts []model.Contact) error {
	if err := writeJSONFile(s.path, contacts); err != nil {
		return fmt.Errorf("persisting contacts: %w", err)
	}
	return nil
}
