package title

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/internal/genre"
)

func seedTitle(t *testing.T, repo *MemoryRepo, showID, name, rating string, genres ...string) {
	t.Helper()
	flags := genre.NewFlags()
	for _, g := range genres {
		idx, err := genre.Index(g)
		require.NoError(t, err)
		flags.Set(idx)
	}
	require.NoError(t, repo.Create(context.Background(), &Title{
		ShowID: showID,
		Type:   "Movie",
		Name:   name,
		Rating: rating,
		Genres: flags,
	}))
}

func TestService_Query_Pagination(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	for i := 1; i <= 12; i++ {
		seedTitle(t, repo, fmt.Sprintf("s%02d", i), fmt.Sprintf("Movie %02d", i), "PG", "Drama")
	}

	tests := []struct {
		page      int
		wantItems int
	}{
		{1, 5},
		{2, 5},
		{3, 2},
		{4, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			result, err := service.Query(context.Background(), Query{Page: tt.page, PageSize: 5})
			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, 12, result.TotalCount)
			assert.Equal(t, 3, result.TotalPages)
			assert.Equal(t, tt.page, result.Page)
			assert.Equal(t, 5, result.PageSize)
		})
	}
}

func TestService_Query_Ordering(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	// Same name on two titles; the show id breaks the tie.
	seedTitle(t, repo, "s3", "Beta", "PG", "Drama")
	seedTitle(t, repo, "s1", "Beta", "PG", "Drama")
	seedTitle(t, repo, "s2", "Alpha", "PG", "Drama")

	result, err := service.Query(context.Background(), Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "s2", result.Items[0].ShowID)
	assert.Equal(t, "s1", result.Items[1].ShowID)
	assert.Equal(t, "s3", result.Items[2].ShowID)
}

func TestService_Query_Search(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	seedTitle(t, repo, "s1", "The Dark Knight", "PG", "Action")
	seedTitle(t, repo, "s2", "Dark Waters", "PG", "Drama")
	seedTitle(t, repo, "s3", "Bright", "PG", "Action")

	result, err := service.Query(context.Background(), Query{Search: "dark", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	for _, item := range result.Items {
		assert.Contains(t, []string{"s1", "s2"}, item.ShowID)
	}
}

func TestService_Query_DisplayedGenre(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	// Drama precedes Horror in the taxonomy, so the primary genre is Drama.
	seedTitle(t, repo, "s1", "Scary Story", "R", "Drama", "Horror Movies")

	filtered, err := service.Query(context.Background(), Query{Genre: "Horror", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "Horror", filtered.Items[0].Genre)

	unfiltered, err := service.Query(context.Background(), Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, unfiltered.Items, 1)
	assert.Equal(t, "Drama", unfiltered.Items[0].Genre)
}

func TestService_Query_GenreAlias(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	seedTitle(t, repo, "s1", "Scary Story", "R", "Horror Movies")

	// Column form and canonical label resolve to the same filter.
	for _, label := range []string{"Horror", "horror movies", "HORROR"} {
		result, err := service.Query(context.Background(), Query{Genre: label, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount, "label %q", label)
	}
}

func TestService_Query_UnrecognizedGenre(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	_, err := service.Query(context.Background(), Query{Genre: "Westerns", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, genre.ErrUnrecognized)
}

func TestService_Query_KidsMode(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	seedTitle(t, repo, "s1", "Family Fun", "G", "Children")
	seedTitle(t, repo, "s2", "Grown Ups Only", "TV-MA", "Drama")
	seedTitle(t, repo, "s3", "No Rating Set", "", "Drama")

	result, err := service.Query(context.Background(), Query{Page: 1, PageSize: 10, KidsMode: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	for _, item := range result.Items {
		assert.NotEqual(t, "s2", item.ShowID)
	}
}

func TestService_GetByID(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	seedTitle(t, repo, "s1", "Grown Ups Only", "TV-MA", "Drama")
	seedTitle(t, repo, "s2", "No Rating Set", "", "Drama")

	t.Run("found", func(t *testing.T) {
		item, err := service.GetByID(context.Background(), "s1", false)
		require.NoError(t, err)
		assert.Equal(t, "Grown Ups Only", item.Title)
		assert.Equal(t, "Drama", item.Genre)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := service.GetByID(context.Background(), "nope", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("kids mode hides restricted", func(t *testing.T) {
		_, err := service.GetByID(context.Background(), "s1", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("kids mode allows unset rating", func(t *testing.T) {
		_, err := service.GetByID(context.Background(), "s2", true)
		assert.NoError(t, err)
	})
}

func TestService_Genres_Sorted(t *testing.T) {
	repo := NewMemoryRepo(nil)
	service := NewService(repo)

	seedTitle(t, repo, "s1", "A", "PG", "Thrillers")
	seedTitle(t, repo, "s2", "B", "PG", "Action")
	seedTitle(t, repo, "s3", "C", "PG", "Drama")

	labels, err := service.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Drama", "Thriller"}, labels)
}
