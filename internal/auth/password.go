// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides password hashing and signed-token utilities
// guarding the admin surface.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor for new password hashes.
const BcryptCost = 10

// MinPasswordLength is the minimum accepted length for new passwords.
const MinPasswordLength = 8

// HashPassword creates a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
