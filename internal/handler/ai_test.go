package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIEndpointsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	paths := []string{
		"/api/ai/improve-title",
		"/api/ai/generate-excerpt",
		"/api/ai/help-content",
		"/api/ai/suggest-tags",
		"/api/ai/generate-seo",
	}
	for _, path := range paths {
		rec := ts.do(t, http.MethodPost, path, "", map[string]string{"title": "x"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestImproveTitle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/improve-title", ts.token(t),
		ImproveTitleRequest{Title: "my first post"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ImproveTitleResponse](t, rec)
	assert.Equal(t, "my first post", resp.Original)
	assert.Equal(t, "My First Post", resp.Improved)
}

func TestImproveTitleValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/improve-title", ts.token(t), map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateExcerptAndTags(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/generate-excerpt", token, GenerateExcerptRequest{
		Title:   "Testing",
		Content: "<p>The opening sentence carries all the weight here. The rest does not.</p>",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	excerpt := decode[map[string]string](t, rec)
	assert.Equal(t, "The opening sentence carries all the weight here", excerpt["excerpt"])

	rec = ts.do(t, http.MethodPost, "/api/ai/suggest-tags", token, SuggestTagsRequest{
		Title:   "Docker",
		Content: "<p>docker containers and docker images</p>",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	tags := decode[map[string][]string](t, rec)
	assert.Equal(t, "docker", tags["tags"][0])
}

func TestGenerateSEO(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/generate-seo", ts.token(t), GenerateSEORequest{
		Title:   "Short",
		Content: "<p>A sentence long enough to become the description.</p>",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	seo := decode[map[string]string](t, rec)
	assert.NotEmpty(t, seo["seoTitle"])
	assert.NotEmpty(t, seo["seoDescription"])
}

func TestHelpContent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/help-content", ts.token(t),
		HelpContentRequest{Topic: "unit testing"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["content"], "unit testing")
}
