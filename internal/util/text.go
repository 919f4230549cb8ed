// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	htmlTags   = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// WordsPerMinute is the average reading speed used for reading-time estimates.
const WordsPerMinute = 200

// StripHTML removes tags from an HTML fragment and collapses whitespace.
func StripHTML(content string) string {
	text := htmlTags.ReplaceAllString(content, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// ReadingTime estimates how many minutes it takes to read the given HTML
// content, rounding up and never returning less than 1 for non-empty text.
func ReadingTime(content string) int {
	text := StripHTML(content)
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Truncate cuts s to at most max characters, never splitting a multi-byte
// rune. When the cut happens mid-text an ellipsis is appended within the
// limit.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
