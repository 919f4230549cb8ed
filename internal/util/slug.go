// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and plain-text helpers.
package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rubyet/webfolio/internal/model"
)

// nonAlphanumeric matches any run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title to a URL-friendly slug. It removes accents,
// lowercases, collapses every run of non-alphanumeric characters into a
// single hyphen, and trims leading/trailing hyphens.
func Slugify(title string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, title)

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}

// EnsureUniqueSlug returns baseSlug, or the first baseSlug-N (N starting at
// 1) that does not collide with another post's slug. The post identified by
// excludeID is ignored in the collision check so an update does not collide
// with itself. Pass excludeID == "" for creates.
func EnsureUniqueSlug(baseSlug string, posts []model.Post, excludeID string) string {
	taken := func(slug string) bool {
		for i := range posts {
			if posts[i].Slug == slug && posts[i].ID != excludeID {
				return true
			}
		}
		return false
	}

	if !taken(baseSlug) {
		return baseSlug
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", baseSlug, n)
		if !taken(candidate) {
			return candidate
		}
	}
}
