// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai generates editorial suggestions for posts. With an API key
// configured it calls an OpenAI-compatible chat completion endpoint;
// without one, or on any API failure, it degrades to deterministic
// rule-based generation so the endpoints never fail.
package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/yuin/goldmark"

	"github.com/rubyet/webfolio/internal/util"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultCallTimeout bounds a single completion call.
const DefaultCallTimeout = 30 * time.Second

var errNoClient = errors.New("ai: no client configured")

// SEOResult carries generated search metadata.
type SEOResult struct {
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Service generates titles, excerpts, tags, content and SEO metadata.
type Service struct {
	client    *openai.Client
	model     string
	timeout   time.Duration
	log       *slog.Logger
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// Options configures a Service. An empty APIKey puts the service in
// fallback-only mode.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewService builds an ai.Service from the given options.
func NewService(opts Options, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		model:     opts.Model,
		timeout:   opts.Timeout,
		log:       log,
		markdown:  goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
	}
	if s.model == "" {
		s.model = DefaultModel
	}
	if s.timeout <= 0 {
		s.timeout = DefaultCallTimeout
	}

	if opts.APIKey != "" {
		clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
		if opts.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
		}
		client := openai.NewClient(clientOpts...)
		s.client = &client
	} else {
		log.Info("ai service running in fallback mode, no api key configured")
	}
	return s
}

// Enabled reports whether completions are attempted at all.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// complete runs one chat completion with a bounded timeout and returns
// the first choice's text.
func (s *Service) complete(ctx context.Context, system, user string) (string, error) {
	if s.client == nil {
		return "", errNoClient
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ImproveTitle rewrites a title to be more engaging, capped at 60
// characters. Falls back to rule-based title casing on any failure.
func (s *Service) ImproveTitle(ctx context.Context, title string) string {
	result, err := s.complete(ctx,
		"You improve blog titles. Reply with the improved title only, no quotes.",
		fmt.Sprintf("Improve this blog title to make it more engaging and SEO-friendly: %q", title),
	)
	if err != nil {
		s.fallback("improve title", err)
		return improveTitleFallback(title)
	}
	line, _, _ := strings.Cut(result, "\n")
	return util.Truncate(strings.Trim(line, `"'`), MaxSEOTitleLength)
}

// GenerateExcerpt summarizes content into a short excerpt, capped at 160
// characters. Falls back to the first sentence of the content.
func (s *Service) GenerateExcerpt(ctx context.Context, title, content string) string {
	preview := util.Truncate(util.StripHTML(content), 500)
	result, err := s.complete(ctx,
		"You write blog excerpts. Reply with the excerpt only.",
		fmt.Sprintf("Create a 150 character excerpt for %q. Content: %s", title, preview),
	)
	if err != nil {
		s.fallback("generate excerpt", err)
		return generateExcerptFallback(content)
	}
	return util.Truncate(result, MaxSEODescriptionLength)
}

// HelpWithContent writes a few paragraphs of HTML about a topic. Model
// output is treated as Markdown, rendered, and sanitized. Falls back to
// a template chosen deterministically from the topic.
func (s *Service) HelpWithContent(ctx context.Context, topic, currentContent string) string {
	user := fmt.Sprintf("Write 2-3 paragraphs about: %s", topic)
	if strings.TrimSpace(currentContent) != "" {
		user += fmt.Sprintf("\n\nExisting draft to build on:\n%s", util.Truncate(util.StripHTML(currentContent), 500))
	}
	result, err := s.complete(ctx,
		"You write blog content in Markdown. Reply with the content only.",
		user,
	)
	if err != nil {
		s.fallback("help with content", err)
		return helpWithContentFallback(topic)
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(result), &buf); err != nil {
		s.fallback("help with content", err)
		return helpWithContentFallback(topic)
	}
	return strings.TrimSpace(s.sanitizer.Sanitize(buf.String()))
}

// SuggestTags proposes up to eight lowercase tags for a post. Falls back
// to word-frequency keyword extraction.
func (s *Service) SuggestTags(ctx context.Context, title, content string) []string {
	preview := util.Truncate(util.StripHTML(content), 200)
	result, err := s.complete(ctx,
		"You suggest blog tags. Reply with a comma-separated list of lowercase tags only.",
		fmt.Sprintf("Suggest tags for %q. %s", title, preview),
	)
	if err != nil {
		s.fallback("suggest tags", err)
		return suggestTagsFallback(title, content)
	}

	tags := []string{}
	for _, raw := range strings.FieldsFunc(strings.ToLower(result), func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		tag := strings.TrimSpace(raw)
		if tag != "" && len(tag) < 30 {
			tags = append(tags, tag)
		}
		if len(tags) == MaxSuggestedTags {
			break
		}
	}
	if len(tags) == 0 {
		return suggestTagsFallback(title, content)
	}
	return tags
}

// GenerateSEO produces a search title and description. The title comes
// from the post title, the description from the model or the excerpt.
func (s *Service) GenerateSEO(ctx context.Context, title, content, excerpt string) SEOResult {
	result, err := s.complete(ctx,
		"You write SEO meta descriptions. Reply with the description only, at most 160 characters.",
		fmt.Sprintf("Create an SEO description for %q. Content: %s", title, util.Truncate(util.StripHTML(content), 500)),
	)
	if err != nil {
		s.fallback("generate seo", err)
		return generateSEOFallback(title, content, excerpt)
	}
	return SEOResult{
		SEOTitle:       util.Truncate(title, MaxSEOTitleLength),
		SEODescription: util.Truncate(result, MaxSEODescriptionLength),
	}
}

func (s *Service) fallback(op string, err error) {
	if errors.Is(err, errNoClient) {
		return
	}
	s.log.Warn("ai call failed, using fallback", "op", op, "error", err)
}
