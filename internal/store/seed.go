// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"log/slog"

	"github.com/rubyet/webfolio/internal/model"
)

// SeedPosts writes two sample published posts when the collection is
// empty, so a fresh deployment has content to render. No-op otherwise.
func SeedPosts(posts *PostStore, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	if len(posts.List()) > 0 {
		log.Info("posts exist, skipping seed")
		return nil
	}

	samples := []model.PostDraft{
		{
			Title:          "Getting Started with React and Modern Web Development",
			Content:        "<h2>Introduction</h2><p>React has revolutionized the way we build user interfaces. In this guide we explore the fundamentals of React and how it fits into the modern web development ecosystem.</p><h3>Why React?</h3><p>React offers component-based architecture, a virtual DOM for performance, and a rich ecosystem of tools and libraries.</p>",
			Excerpt:        "Learn the fundamentals of React and modern web development practices.",
			CoverImage:     "/img/post-1.jpg",
			Author:         "Rubyet Hossain",
			Status:         model.PostStatusPublished,
			Tags:           []string{"React", "JavaScript", "Web Development"},
			SEOTitle:       "Getting Started with React - Complete Guide",
			SEODescription: "Learn React from scratch with this guide covering components, hooks, and best practices.",
		},
		{
			Title:          "Understanding JavaScript Async/Await",
			Content:        "<h2>Mastering Asynchronous JavaScript</h2><p>Async/await is a modern way to handle asynchronous operations in JavaScript. It makes asynchronous code look and behave more like synchronous code.</p><h3>The Basics</h3><p>The async keyword declares an async function, while await waits for a Promise to resolve.</p>",
			Excerpt:        "Master asynchronous JavaScript with async/await patterns and best practices.",
			CoverImage:     "/img/post-2.jpg",
			Author:         "Rubyet Hossain",
			Status:         model.PostStatusPublished,
			Tags:           []string{"JavaScript", "Async", "Programming"},
			SEOTitle:       "JavaScript Async/Await - Complete Tutorial",
			SEODescription: "Learn how to use async/await in JavaScript with practical examples and best practices.",
		},
	}

	for _, draft := range samples {
		if _, err := posts.Create(draft); err != nil {
			return err
		}
	}

	log.Info("seeded sample posts", "count", len(samples))
	return nil
}
