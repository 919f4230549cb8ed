// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package ai

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rubyet/webfolio/internal/util"
)

// Limits applied to generated metadata. Search engines truncate titles
// around 60 characters and descriptions around 160.
const (
	MaxSEOTitleLength       = 60
	MaxSEODescriptionLength = 160
	MaxSuggestedTags        = 8
)

// Words kept lowercase in title case unless they lead the title.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true,
	"or": true, "for": true, "nor": true, "on": true, "at": true,
	"to": true, "from": true, "by": true, "in": true, "of": true,
}

var stopWords = map[string]bool{
	"the": true, "be": true, "to": true, "of": true, "and": true,
	"a": true, "in": true, "that": true, "have": true, "i": true,
	"it": true, "for": true, "not": true, "on": true, "with": true,
	"he": true, "as": true, "you": true, "do": true, "at": true,
	"this": true, "but": true, "his": true, "by": true, "from": true,
	"they": true, "we": true, "say": true, "her": true, "she": true,
	"or": true, "an": true, "will": true, "my": true, "one": true,
	"all": true, "would": true, "there": true, "their": true,
}

var powerWords = []string{"Complete", "Ultimate", "Essential", "Comprehensive", "Expert"}

var wordPattern = regexp.MustCompile(`[a-z]{3,}`)

// pick selects an element of choices by FNV-1a hash of the seed, so the
// same input always yields the same template.
func pick(seed string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return int(h.Sum32() % uint32(n))
}

// improveTitleFallback applies title case, preserving acronyms, and
// prefixes short how-to titles with a guide power word.
func improveTitleFallback(title string) string {
	words := strings.Fields(title)
	for i, word := range words {
		if word == strings.ToUpper(word) && len(word) > 1 {
			continue // acronym
		}
		lower := strings.ToLower(word)
		if i == 0 || !minorWords[lower] {
			words[i] = strings.ToUpper(lower[:1]) + lower[1:]
		} else {
			words[i] = lower
		}
	}
	improved := strings.Join(words, " ")

	if len(improved) < 40 && strings.HasPrefix(strings.ToLower(improved), "how to") {
		power := powerWords[pick(title, len(powerWords))]
		improved = power + " Guide: " + improved
	}
	return util.Truncate(improved, MaxSEOTitleLength)
}

// generateExcerptFallback takes the first substantial sentence of the
// plain-text content, capped at 160 characters.
func generateExcerptFallback(content string) string {
	plain := util.StripHTML(content)

	var excerpt string
	for _, s := range splitSentences(plain) {
		if len(strings.TrimSpace(s)) > 20 {
			excerpt = strings.TrimSpace(s)
			break
		}
	}
	if excerpt == "" {
		excerpt = plain
	}
	return util.Truncate(excerpt, MaxSEODescriptionLength)
}

var contentTemplates = []string{
	`<p>%[1]s is an important concept that many people want to understand better. Let's explore the key aspects and why it matters.</p>
<p>When learning about %[1]s, it's essential to start with the fundamentals. This foundation will help you build a comprehensive understanding of the subject.</p>
<p>As you continue your journey with %[1]s, remember that practice and continuous learning are key to mastery. Take your time to explore different resources and perspectives.</p>`,

	`<p>Understanding %[1]s can open up new opportunities and enhance your skills. This guide will help you get started on the right path.</p>
<p>The key to success with %[1]s is consistency and dedication. Start with small steps and gradually build your expertise over time.</p>
<p>Whether you're a beginner or looking to advance your knowledge, %[1]s offers endless possibilities for growth and development.</p>`,

	`<p>If you're interested in %[1]s, you're in the right place. This topic has gained significant attention and for good reason.</p>
<p>Many experts agree that %[1]s is becoming increasingly relevant in today's world. Learning about it now will give you a valuable advantage.</p>
<p>Take the time to explore %[1]s thoroughly. The insights you gain will be worth the investment of your time and effort.</p>`,
}

func helpWithContentFallback(topic string) string {
	tmpl := contentTemplates[pick(topic, len(contentTemplates))]
	return fmt.Sprintf(tmpl, topic)
}

// suggestTagsFallback extracts the most frequent non-stop-words from the
// title and content. Ties break in first-occurrence order so the result
// is stable.
func suggestTagsFallback(title, content string) []string {
	text := strings.ToLower(title + " " + util.StripHTML(content))

	frequency := map[string]int{}
	order := []string{}
	for _, word := range wordPattern.FindAllString(text, -1) {
		if stopWords[word] {
			continue
		}
		if _, seen := frequency[word]; !seen {
			order = append(order, word)
		}
		frequency[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]] > frequency[order[j]]
	})
	if len(order) > MaxSuggestedTags {
		order = order[:MaxSuggestedTags]
	}
	if len(order) == 0 {
		return []string{"blog", "article", "content"}
	}
	return order
}

// generateSEOFallback keeps the title, appending a year-guide suffix to
// short ones, and derives the description from the excerpt or the first
// two sentences of the content.
func generateSEOFallback(title, content, excerpt string) SEOResult {
	seoTitle := title
	if len(seoTitle) < 50 {
		seoTitle = fmt.Sprintf("%s - %d Guide", title, time.Now().Year())
	}
	seoTitle = util.Truncate(seoTitle, MaxSEOTitleLength)

	seoDescription := excerpt
	if seoDescription == "" {
		plain := util.StripHTML(content)
		kept := []string{}
		for _, s := range splitSentences(plain) {
			if len(strings.TrimSpace(s)) > 20 {
				kept = append(kept, strings.TrimSpace(s))
			}
			if len(kept) == 2 {
				break
			}
		}
		seoDescription = strings.Join(kept, ". ") + "."
	}
	seoDescription = util.Truncate(seoDescription, MaxSEODescriptionLength)

	return SEOResult{SEOTitle: seoTitle, SEODescription: seoDescription}
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

func splitSentences(text string) []string {
	return sentenceSplit.Split(text, -1)
}
