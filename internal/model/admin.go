// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// RoleAdmin is the admin role.
const RoleAdmin = "admin"

// Admin is the singleton admin credential record. Exactly one exists per
// deployment; it is created lazily on first boot.
type Admin struct {
	Username          string `json:"username"`
	Password          string `json:"password"` // bcrypt hash, never the plain text
	Email             string `json:"email"`
	Role              string `json:"role"`
	CreatedAt         string `json:"createdAt"`
	PasswordChangedAt string `json:"passwordChangedAt,omitempty"`
}

// PublicAdmin is the admin record with the credential stripped, safe for
// API responses.
type PublicAdmin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public returns the admin record without the password hash.
func (a *Admin) Public() PublicAdmin {
	return PublicAdmin{Username: a.Username, Email: a.Email, Role: a.Role}
}
