package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/internal/title"
)

type memoryRatingRepo struct {
	nextID  int64
	ratings map[int64]Rating
}

func newMemoryRatingRepo() *memoryRatingRepo {
	return &memoryRatingRepo{nextID: 1, ratings: make(map[int64]Rating)}
}

func (r *memoryRatingRepo) Upsert(_ context.Context, rt *Rating) error {
	for id, existing := range r.ratings {
		if existing.UserID == rt.UserID && existing.ShowID == rt.ShowID {
			rt.ID = id
			rt.CreatedAt = time.Now()
			r.ratings[id] = *rt
			return nil
		}
	}
	rt.ID = r.nextID
	rt.CreatedAt = time.Now()
	r.nextID++
	r.ratings[rt.ID] = *rt
	return nil
}

func (r *memoryRatingRepo) GetByID(_ context.Context, id int64) (Rating, error) {
	rt, ok := r.ratings[id]
	if !ok {
		return Rating{}, ErrNotFound
	}
	return rt, nil
}

func (r *memoryRatingRepo) ListByShow(_ context.Context, showID string) ([]Rating, error) {
	var out []Rating
	for _, rt := range r.ratings {
		if rt.ShowID == showID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memoryRatingRepo) ListByUser(_ context.Context, userID string) ([]Rating, error) {
	var out []Rating
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memoryRatingRepo) Summary(_ context.Context, showID string) (float64, int, error) {
	var sum, count int
	for _, rt := range r.ratings {
		if rt.ShowID == showID {
			sum += rt.Stars
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *memoryRatingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.ratings[id]; !ok {
		return ErrNotFound
	}
	delete(r.ratings, id)
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	titles := title.NewMemoryRepo(nil)
	require.NoError(t, titles.Create(context.Background(), &title.Title{
		ShowID: "s1",
		Name:   "Some Movie",
		Rating: "PG",
	}))
	return NewService(newMemoryRatingRepo(), title.NewService(titles))
}

func TestService_Upsert(t *testing.T) {
	service := newTestService(t)

	t.Run("unknown title", func(t *testing.T) {
		_, err := service.Upsert(context.Background(), "u1", "nope", 4, "")
		assert.ErrorIs(t, err, title.ErrNotFound)
	})

	t.Run("review sanitized on write", func(t *testing.T) {
		rt, err := service.Upsert(context.Background(), "u1", "s1", 4, `great <script>alert(1)</script>movie`)
		require.NoError(t, err)
		assert.Equal(t, "great movie", rt.Review)
	})

	t.Run("second write replaces the first", func(t *testing.T) {
		rt, err := service.Upsert(context.Background(), "u1", "s1", 2, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, 2, rt.Stars)

		average, count, err := service.Summary(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 2.0, average)
	})
}

func TestService_ListByShow_EncodesReviews(t *testing.T) {
	service := newTestService(t)

	_, err := service.Upsert(context.Background(), "u1", "s1", 5, `5/7 would watch > twice`)
	require.NoError(t, err)

	ratings, err := service.ListByShow(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "5/7 would watch &gt; twice", ratings[0].Review)
}

func TestService_Delete(t *testing.T) {
	service := newTestService(t)

	rt, err := service.Upsert(context.Background(), "u1", "s1", 4, "")
	require.NoError(t, err)

	t.Run("other user forbidden", func(t *testing.T) {
		err := service.Delete(context.Background(), rt.ID, "u2", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin may delete any", func(t *testing.T) {
		err := service.Delete(context.Background(), rt.ID, "u2", true)
		assert.NoError(t, err)
	})

	t.Run("missing rating", func(t *testing.T) {
		err := service.Delete(context.Background(), rt.ID, "u1", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
