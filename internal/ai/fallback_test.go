package ai

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImproveTitleFallback(t *testing.T) {
	tests := []struct {
		name  string
		title string
		check func(t *testing.T, got string)
	}{
		{
			name:  "title cases words",
			title: "the art of simple code",
			check: func(t *testing.T, got string) {
				assert.Equal(t, "The Art of Simple Code", got)
			},
		},
		{
			name:  "preserves acronyms",
			title: "working with JSON and HTTP",
			check: func(t *testing.T, got string) {
				assert.Contains(t, got, "JSON")
				assert.Contains(t, got, "HTTP")
			},
		},
		{
			name:  "short how-to gets a guide prefix",
			title: "how to sort slices",
			check: func(t *testing.T, got string) {
				assert.Contains(t, got, "Guide: How to Sort Slices")
			},
		},
		{
			name:  "capped at sixty characters",
			title: strings.Repeat("very long title ", 10),
			check: func(t *testing.T, got string) {
				assert.LessOrEqual(t, len(got), MaxSEOTitleLength)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, improveTitleFallback(tt.title))
		})
	}
}

func TestImproveTitleFallbackDeterministic(t *testing.T) {
	first := improveTitleFallback("how to test things")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, improveTitleFallback("how to test things"))
	}
}

func TestGenerateExcerptFallback(t *testing.T) {
	content := "<p>This is the first substantial sentence of the article body. " +
		"Here comes a second sentence that should not appear.</p>"
	got := generateExcerptFallback(content)
	assert.Equal(t, "This is the first substantial sentence of the article body", got)

	long := "<p>" + strings.Repeat("word ", 100) + "</p>"
	got = generateExcerptFallback(long)
	assert.LessOrEqual(t, len(got), MaxSEODescriptionLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestHelpWithContentFallback(t *testing.T) {
	got := helpWithContentFallback("unit testing")
	assert.Contains(t, got, "unit testing")
	assert.Contains(t, got, "<p>")

	// Same topic, same template.
	assert.Equal(t, got, helpWithContentFallback("unit testing"))
}

func TestSuggestTagsFallback(t *testing.T) {
	content := "<p>Docker containers make deployment simple. Docker images " +
		"package your application. Containers isolate processes.</p>"
	tags := suggestTagsFallback("Docker Deployment", content)

	assert.LessOrEqual(t, len(tags), MaxSuggestedTags)
	assert.Equal(t, "docker", tags[0], "most frequent word first")
	assert.Contains(t, tags, "containers")
	assert.NotContains(t, tags, "the")
}

func TestSuggestTagsFallbackDefaults(t *testing.T) {
	tags := suggestTagsFallback("", "")
	assert.Equal(t, []string{"blog", "article", "content"}, tags)
}

func TestGenerateSEOFallback(t *testing.T) {
	seo := generateSEOFallback("Go Tips", "<p>ignored</p>", "A hand-written excerpt.")
	assert.Equal(t, fmt.Sprintf("Go Tips - %d Guide", time.Now().Year()), seo.SEOTitle)
	assert.Equal(t, "A hand-written excerpt.", seo.SEODescription)

	longTitle := strings.Repeat("Already Long Enough Title ", 3)
	seo = generateSEOFallback(longTitle, "<p>First proper sentence goes right here. Second proper sentence follows it. Third one is dropped.</p>", "")
	assert.LessOrEqual(t, len(seo.SEOTitle), MaxSEOTitleLength)
	assert.Equal(t, "First proper sentence goes right here. Second proper sentence follows it.", seo.SEODescription)
}

func TestPickStable(t *testing.T) {
	for _, seed := range []string{"", "a", "topic with spaces"} {
		first := pick(seed, 5)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 5)
		assert.Equal(t, first, pick(seed, 5))
	}
}
