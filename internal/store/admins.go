// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rubyet/webfolio/internal/auth"
	"github.com/rubyet/webfolio/internal/model"
)

// Default admin credentials, written on first boot when no admin record
// exists. The bootstrap log tells the operator to change the password.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Admin@2024!"
	DefaultAdminEmail    = "admin@rubyet.info"
)

// AdminStore persists the singleton admin credential record as a single
// JSON object.
type AdminStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewAdminStore creates an admin store backed by admin.json in dataDir.
func NewAdminStore(dataDir string, log *slog.Logger) *AdminStore {
	if log == nil {
		log = slog.Default()
	}
	return &AdminStore{
		path: filepath.Join(dataDir, AdminFileName),
		log:  log,
	}
}

// Get loads the admin record, or ErrNotFound when none exists yet.
func (s *AdminStore) Get() (*model.Admin, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading admin record: %w", err)
	}

	var admin model.Admin
	if err := json.Unmarshal(data, &admin); err != nil {
		return nil, fmt.Errorf("parsing admin record: %w", err)
	}
	return &admin, nil
}

// save persists the admin record with restrictive permissions.
func (s *AdminStore) save(admin *model.Admin) error {
	data, err := json.MarshalIndent(admin, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding admin record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing admin record: %w", err)
	}
	return nil
}

// Bootstrap creates the default admin record if none exists. Idempotent:
// an existing record is left untouched.
func (s *AdminStore) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Get(); err == nil {
		s.log.Info("admin record exists, skipping bootstrap")
		return nil
	} else if err != ErrNotFound {
		return err
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing default password: %w", err)
	}

	admin := &model.Admin{
		Username:  DefaultAdminUsername,
		Password:  hash,
		Email:     DefaultAdminEmail,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.save(admin); err != nil {
		return err
	}

	s.log.Warn("created default admin account, change this password immediately",
		"username", DefaultAdminUsername,
		"password", DefaultAdminPassword,
	)
	return nil
}

// Authenticate checks a username/password pair against the stored record.
// A username mismatch and a password mismatch return the same
// auth failure so callers cannot enumerate valid usernames.
func (s *AdminStore) Authenticate(username, password string) (*model.Admin, error) {
	admin, err := s.Get()
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if admin.Username != username || !auth.CheckPassword(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// ChangePassword verifies the current password and stores a hash of the
// new one along with a passwordChangedAt stamp. The new password must be
// at least auth.MinPasswordLength characters.
func (s *AdminStore) ChangePassword(currentPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(newPassword) < auth.MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters",
			ErrValidation, auth.MinPasswordLength)
	}

	admin, err := s.Get()
	if err != nil {
		return err
	}
	if !auth.CheckPassword(currentPassword, admin.Password) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing new password: %w", err)
	}

	admin.Password = hash
	admin.PasswordChangedAt = time.Now().UTC().Format(time.RFC3339)
	return s.save(admin)
}
