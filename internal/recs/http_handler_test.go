package recs

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movieapi/internal/genre"
	"movieapi/internal/title"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MemoryRepo, *title.MemoryRepo) {
	t.Helper()
	titles := title.NewMemoryRepo(rand.New(rand.NewSource(1)))
	repo := NewMemoryRepo(titles)
	service := NewService(repo, title.NewService(titles), zap.NewNop())
	return NewHTTPHandler(service), repo, titles
}

func addTestTitle(t *testing.T, titles *title.MemoryRepo, showID, name string) {
	t.Helper()
	flags := genre.NewFlags()
	idx, err := genre.Index("Drama")
	require.NoError(t, err)
	flags.Set(idx)
	require.NoError(t, titles.Create(context.Background(), &title.Title{
		ShowID: showID,
		Name:   name,
		Rating: "PG",
		Genres: flags,
	}))
}

func TestHTTPHandler_ForUser(t *testing.T) {
	handler, _, titles := newTestHandler(t)
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5"} {
		addTestTitle(t, titles, id, "Movie "+id)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/users/00000001/recommendations", nil)
	r.SetPathValue("userId", "00000001")

	handler.ForUser(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "locationBased")
	assert.Contains(t, w.Body.String(), "general")
	assert.Contains(t, w.Body.String(), "streamingBased")
}

func TestHTTPHandler_Neighbors(t *testing.T) {
	handler, repo, titles := newTestHandler(t)
	addTestTitle(t, titles, "seed", "Seed Movie")
	addTestTitle(t, titles, "s2", "Similar Movie")
	repo.SetNeighborRow("seed", []string{"s2"}, nil)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/seed/recommendations", nil)
		r.SetPathValue("id", "seed")

		handler.Neighbors(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Similar Movie")
	})

	t.Run("missing seed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/nope/recommendations", nil)
		r.SetPathValue("id", "nope")

		handler.Neighbors(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
