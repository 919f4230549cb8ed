// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Contact statuses
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// Contact represents a contact-form submission.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
	Status      string `json:"status"`
}

// SubmittedTime parses the submission timestamp, zero time on failure.
func (c *Contact) SubmittedTime() time.Time {
	if c.SubmittedAt == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, c.SubmittedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ContactSubmission carries the public form fields for a new contact.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactPatch is a partial update for a contact. The ID is immutable and
// submittedAt is never patched.
type ContactPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Subject *string `json:"subject,omitempty"`
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=read unread"`
}

// Apply merges the patch over the contact in place.
func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Message != nil {
		c.Message = *p.Message
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// ContactStatistics summarizes the contact collection.
type ContactStatistics struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Read   int `json:"read"`
}
