// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rubyet/webfolio/internal/cache"
	"github.com/rubyet/webfolio/internal/model"
	"github.com/rubyet/webfolio/internal/util"
)

// DefaultCacheTTL is the freshness window for the post collection cache.
const DefaultCacheTTL = 60 * time.Second

// MaxRelatedPosts is the default cap for related-post lookups.
const MaxRelatedPosts = 3

// PostStore persists posts to a JSON file with an in-memory TTL cache.
// Every mutation invalidates the cache before returning, so in-process
// readers never observe state older than the last write.
type PostStore struct {
	path  string
	cache *cache.Collection[model.Post]
	log   *slog.Logger
	mu    sync.Mutex // serializes mutations
}

// NewPostStore creates a post store backed by posts.json in dataDir.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewPostStore(dataDir string, ttl time.Duration, log *slog.Logger) *PostStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostStore{
		path:  filepath.Join(dataDir, PostsFileName),
		cache: cache.NewCollection(ttl, model.Post.Clone),
		log:   log,
	}
}

// List returns all persisted posts, served from the cache while it is
// fresh. The returned slice is a defensive copy. A read or parse failure
// degrades to an empty collection and is logged, never returned.
func (s *PostStore) List() []model.Post {
	posts, err := s.cache.GetOrLoad(s.load)
	if err != nil {
		// load never errors; degraded reads come back as empty slices.
		return []model.Post{}
	}
	return posts
}

// load reads the backing file, degrading to empty on failure.
func (s *PostStore) load() ([]model.Post, error) {
	posts, err := readJSONFile[model.Post](s.path)
	if err != nil {
		s.log.Warn("reading posts degraded to empty collection", "error", err)
	}
	return posts, nil
}

// save persists the full collection and invalidates the cache. The cache is
// dropped even when the write fails: the in-memory mutation is not durable
// until the write succeeds, so the next read must go back to disk.
func (s *PostStore) save(posts []model.Post) error {
	err := writeJSONFile(s.path, posts)
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("persisting posts: %w", err)
	}
	return nil
}

// GetByID returns the post with the given id, or ErrNotFound.
func (s *PostStore) GetByID(id string) (*model.Post, error) {
	for _, p := range s.List() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// GetBySlug returns the post with the given slug, or ErrNotFound.
func (s *PostStore) GetBySlug(slug string) (*model.Post, error) {
	for _, p := range s.List() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// ListByStatus returns posts filtered to "published" or "draft" (any other
// filter means all), sorted by publishedDate descending. Posts with a
// missing or unparseable date sort as the oldest.
func (s *PostStore) ListByStatus(filter string) []model.Post {
	posts := s.List()

	switch filter {
	case model.PostStatusPublished, model.PostStatusDraft:
		filtered := posts[:0]
		for _, p := range posts {
			if p.Status == filter {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedTime().After(posts[j].PublishedTime())
	})
	return posts
}

// Create assigns an id, a unique slug derived from the title, publication
// timestamps, and a zero view counter, then appends and persists the post.
func (s *PostStore) Create(draft model.PostDraft) (*model.Post, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.List()
	now := time.Now().UTC().Format(time.RFC3339)

	status := draft.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	post := model.Post{
		ID:             uuid.NewString(),
		Title:          draft.Title,
		Slug:           util.EnsureUniqueSlug(util.Slugify(draft.Title), posts, ""),
		Content:        draft.Content,
		Excerpt:        draft.Excerpt,
		CoverImage:     draft.CoverImage,
		Author:         draft.Author,
		PublishedDate:  now,
		UpdatedDate:    now,
		Status:         status,
		Tags:           append([]string{}, draft.Tags...),
		SEOTitle:       draft.SEOTitle,
		SEODescription: draft.SEODescription,
		Views:          0,
	}

	posts = append(posts, post)
	if err := s.save(posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update merges the patch over the stored post and stamps updatedDate.
// When the patch changes the title the slug is recomputed, excluding the
// post's own id from the collision check.
func (s *PostStore) Update(id string, patch model.PostPatch) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.List()
	idx := -1
	for i := range posts {
		if posts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	titleChanged := patch.Title != nil && *patch.Title != posts[idx].Title
	patch.Apply(&posts[idx])
	posts[idx].UpdatedDate = time.Now().UTC().Format(time.RFC3339)

	if titleChanged {
		posts[idx].Slug = util.EnsureUniqueSlug(util.Slugify(posts[idx].Title), posts, id)
	}

	if err := s.save(posts); err != nil {
		return nil, err
	}
	updated := posts[idx]
	return &updated, nil
}

// Delete removes the post with the given id, returning ErrNotFound when
// the id is absent.
func (s *PostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.List()
	remaining := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(posts) {
		return ErrNotFound
	}
	return s.save(remaining)
}

// IncrementViews bumps the view counter for a post and persists it,
// returning the new value. Atomic within the process.
func (s *PostStore) IncrementViews(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.List()
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Views++
			if err := s.save(posts); err != nil {
				return 0, err
			}
			return posts[i].Views, nil
		}
	}
	return 0, ErrNotFound
}

// Search returns posts whose title, excerpt, content, or any tag contains
// the query, case-insensitively, optionally pre-filtered by status. The
// result is always a subset of ListByStatus(status) membership.
func (s *PostStore) Search(query, status string) []model.Post {
	posts := s.List()

	if status != "" && status != "all" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	if query == "" {
		return posts
	}

	q := strings.ToLower(query)
	matches := posts[:0]
	for _, p := range posts {
		if postMatches(&p, q) {
			matches = append(matches, p)
		}
	}
	return matches
}

func postMatches(p *model.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) ||
		strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FindByTag returns published posts carrying the tag (case-insensitive
// exact match).
func (s *PostStore) FindByTag(tag string) []model.Post {
	matches := []model.Post{}
	for _, p := range s.List() {
		if p.IsPublished() && p.HasTag(tag) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindRelated returns up to limit published posts sharing at least one tag
// with the source post, excluding the source itself, in store order.
// Returns ErrNotFound when the source post does not exist. A non-positive
// limit falls back to MaxRelatedPosts.
func (s *PostStore) FindRelated(id string, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = MaxRelatedPosts
	}

	posts := s.List()
	var source *model.Post
	for i := range posts {
		if posts[i].ID == id {
			source = &posts[i]
			break
		}
	}
	if source == nil {
		return nil, ErrNotFound
	}

	related := []model.Post{}
	for _, p := range posts {
		if p.ID == id || !p.IsPublished() || !p.SharesTagWith(source) {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// TagCounts counts tag occurrences across published posts, sorted by count
// descending.
func (s *PostStore) TagCounts() []model.TagCount {
	counts := map[string]int{}
	order := []string{}
	for _, p := range s.List() {
		if !p.IsPublished() {
			continue
		}
		for _, tag := range p.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	result := make([]model.TagCount, 0, len(order))
	for _, tag := range order {
		result = append(result, model.TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// Statistics summarizes the post collection.
func (s *PostStore) Statistics() model.PostStatistics {
	stats := model.PostStatistics{}
	for _, p := range s.List() {
		stats.TotalPosts++
		switch p.Status {
		case model.PostStatusPublished:
			stats.Published++
		case model.PostStatusDraft:
			stats.Drafts++
		}
		stats.TotalViews += p.Views
	}
	return stats
}

// ReplaceAll overwrites the whole collection, used by imports.
func (s *PostStore) ReplaceAll(posts []model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if posts == nil {
		posts = []model.Post{}
	}
	return s.save(posts)
}
