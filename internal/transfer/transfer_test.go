package transfer

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyet/webfolio/internal/model"
	"github.com/rubyet/webfolio/internal/store"
)

func newTestStore(t *testing.T) *store.PostStore {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, store.EnsureDataDir(dir))
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return store.NewPostStore(dir, time.Minute, log)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	_, err := src.Create(model.PostDraft{Title: "First", Status: model.PostStatusPublished, Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = src.Create(model.PostDraft{Title: "Second", Status: model.PostStatusDraft})
	require.NoError(t, err)

	data := Export(src)
	assert.Equal(t, FormatVersion, data.Version)
	assert.NotEmpty(t, data.ExportedAt)
	require.Len(t, data.Posts, 2)

	dst := newTestStore(t)
	count, err := Import(dst, data)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, data.Posts, dst.List())
}

func TestImportReplacesCollection(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(model.PostDraft{Title: "Existing"})
	require.NoError(t, err)

	count, err := Import(s, ExportData{
		Version: FormatVersion,
		Posts:   []model.Post{{ID: "n1", Title: "Imported", Slug: "imported", Status: "published"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestImportAcceptsLegacyPayloadWithoutVersion(t *testing.T) {
	s := newTestStore(t)
	_, err := Import(s, ExportData{Posts: []model.Post{{ID: "a", Title: "Legacy"}}})
	require.NoError(t, err)
}

func TestImportValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		data ExportData
	}{
		{"missing posts array", ExportData{Version: FormatVersion}},
		{"unsupported version", ExportData{Version: 99, Posts: []model.Post{}}},
		{"post without id", ExportData{Version: FormatVersion, Posts: []model.Post{{Title: "x"}}}},
		{"post without title", ExportData{Version: FormatVersion, Posts: []model.Post{{ID: "a"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(s, tt.data)
			assert.ErrorIs(t, err, store.ErrValidation)
		})
	}
}

func TestImportEmptyArrayClears(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(model.PostDraft{Title: "Gone"})
	require.NoError(t, err)

	count, err := Import(s, ExportData{Version: FormatVersion, Posts: []model.Post{}})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, s.List())
}
