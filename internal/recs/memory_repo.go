package recs

import (
	"context"
	"sync"

	"movieapi/internal/title"
)

type userRowKey struct {
	src Source
	key int
}

// MemoryRepo is an in-memory Repository backed by a title.MemoryRepo for
// the catalog pools. Seeding the title repository's random source makes
// backfill selection reproducible.
type MemoryRepo struct {
	mu        sync.RWMutex
	userRows  map[userRowKey][]string
	neighbors map[string][2][]string
	titles    *title.MemoryRepo
}

func NewMemoryRepo(titles *title.MemoryRepo) *MemoryRepo {
	return &MemoryRepo{
		userRows:  make(map[userRowKey][]string),
		neighbors: make(map[string][2][]string),
		titles:    titles,
	}
}

// SetUserRow stores a precomputed per-user row.
func (r *MemoryRepo) SetUserRow(src Source, key int, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userRows[userRowKey{src: src, key: key}] = append([]string{}, ids...)
}

// SetNeighborRow stores a precomputed per-title neighbor row.
func (r *MemoryRepo) SetNeighborRow(showID string, collab, content []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.neighbors[showID] = [2][]string{
		append([]string{}, collab...),
		append([]string{}, content...),
	}
}

func (r *MemoryRepo) UserRow(_ context.Context, src Source, key int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.userRows[userRowKey{src: src, key: key}]
	if !ok {
		return nil, nil
	}
	return append([]string{}, row...), nil
}

func (r *MemoryRepo) NeighborRow(_ context.Context, showID string) ([]string, []string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.neighbors[showID]
	if !ok {
		return nil, nil, nil
	}
	return append([]string{}, row[0]...), append([]string{}, row[1]...), nil
}

func (r *MemoryRepo) RandomIDs(ctx context.Context, limit int, kidsMode bool) ([]string, error) {
	return r.titles.RandomIDs(ctx, limit, kidsMode)
}

func (r *MemoryRepo) IDsByGenre(ctx context.Context, genreIdx int, excludeID string, limit int, kidsMode bool) ([]string, error) {
	return r.titles.IDsByGenre(ctx, genreIdx, excludeID, limit, kidsMode)
}
