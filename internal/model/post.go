// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including Post, Contact, and the Admin credential record.
package model

import (
	"strings"
	"time"
)

// Post statuses
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post represents a blog post. Field names match the on-disk JSON layout
// (camelCase) produced by the stores.
//
// Dates are stored as RFC3339 strings rather than time.Time: the posts file
// is hand-editable and a single malformed timestamp must not make the whole
// collection unreadable. Use PublishedTime for sorting.
type Post struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	CoverImage     string   `json:"coverImage"`
	Author         string   `json:"author"`
	PublishedDate  string   `json:"publishedDate"`
	UpdatedDate    string   `json:"updatedDate"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	Views          int      `json:"views"`
}

// Clone returns a copy of the post whose Tags slice does not share a
// backing array with the receiver, so mutating one never affects the other.
func (p Post) Clone() Post {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// IsPublished returns true if the post is published.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsDraft returns true if the post is a draft.
func (p *Post) IsDraft() bool {
	return p.Status == PostStatusDraft
}

// PublishedTime parses the post's published date. A missing or unparseable
// date yields the zero time, which sorts as the oldest.
func (p *Post) PublishedTime() time.Time {
	if p.PublishedDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, p.PublishedDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasTag reports whether the post carries the given tag, compared
// case-insensitively.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SharesTagWith reports whether the two posts have at least one tag in
// common, compared case-insensitively.
func (p *Post) SharesTagWith(other *Post) bool {
	for _, t := range other.Tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

// PostDraft carries the caller-supplied fields for creating a post.
// ID, slug, dates, and the view counter are assigned by the store.
type PostDraft struct {
	Title          string   `json:"title" validate:"required"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	CoverImage     string   `json:"coverImage"`
	Author         string   `json:"author"`
	Status         string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

// PostPatch is a partial update for a post. Nil fields are left unchanged.
// Slug, dates, and views are never patched directly: the store recomputes
// the slug when the title changes and stamps updatedDate itself.
type PostPatch struct {
	Title          *string   `json:"title,omitempty"`
	Content        *string   `json:"content,omitempty"`
	Excerpt        *string   `json:"excerpt,omitempty"`
	CoverImage     *string   `json:"coverImage,omitempty"`
	Author         *string   `json:"author,omitempty"`
	Status         *string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Tags           *[]string `json:"tags,omitempty"`
	SEOTitle       *string   `json:"seoTitle,omitempty"`
	SEODescription *string   `json:"seoDescription,omitempty"`
}

// Apply merges the patch over the post in place.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.CoverImage != nil {
		post.CoverImage = *p.CoverImage
	}
	if p.Author != nil {
		post.Author = *p.Author
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
	if p.Tags != nil {
		post.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.SEOTitle != nil {
		post.SEOTitle = *p.SEOTitle
	}
	if p.SEODescription != nil {
		post.SEODescription = *p.SEODescription
	}
}

// PostStatistics summarizes the post collection.
type PostStatistics struct {
	TotalPosts int `json:"totalPosts"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	TotalViews int `json:"totalViews"`
}

// TagCount pairs a tag with the number of published posts carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

