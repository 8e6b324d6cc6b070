package title

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"movieapi/internal/genre"
	"movieapi/internal/policy"
)

// MemoryRepo is an in-memory Repository. It implements the full query
// semantics in Go and backs tests, fixtures and the recommendation memory
// store. The caller supplies the random source so random selection is
// reproducible with a seeded generator.
type MemoryRepo struct {
	mu     sync.RWMutex
	titles map[string]Title
	rng    *rand.Rand
}

// NewMemoryRepo creates an empty in-memory repository. rng may be nil when
// random selection is not used.
func NewMemoryRepo(rng *rand.Rand) *MemoryRepo {
	return &MemoryRepo{titles: make(map[string]Title), rng: rng}
}

func (r *MemoryRepo) matches(t Title, f Filter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.GenreIdx != nil && !t.Genres.Has(*f.GenreIdx) {
		return false
	}
	if f.KidsMode && !policy.KidsAllowed(t.Rating) {
		return false
	}
	return true
}

func (r *MemoryRepo) filtered(f Filter) []Title {
	var out []Title
	for _, t := range r.titles {
		if r.matches(t, f) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ShowID < out[j].ShowID
	})
	return out
}

func (r *MemoryRepo) List(_ context.Context, f Filter) ([]Title, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.filtered(f)
	total := len(all)

	if f.Offset >= total {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return all[f.Offset:end], total, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.titles[id]
	if !ok {
		return Title{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) GenresInUse(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	present := make([]bool, genre.Count)
	for _, t := range r.titles {
		for i := range present {
			if t.Genres.Has(i) {
				present[i] = true
			}
		}
	}
	var labels []string
	for i, p := range present {
		if p {
			labels = append(labels, genre.Taxonomy[i].Label)
		}
	}
	return labels, nil
}

func (r *MemoryRepo) Create(_ context.Context, t *Title) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.titles[t.ShowID]; ok {
		return ErrAlreadyExists
	}
	r.titles[t.ShowID] = *t
	return nil
}

func (r *MemoryRepo) Update(_ context.Context, t *Title) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.titles[t.ShowID]; !ok {
		return ErrNotFound
	}
	r.titles[t.ShowID] = *t
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.titles[id]; !ok {
		return ErrNotFound
	}
	delete(r.titles, id)
	return nil
}

// RandomIDs returns up to limit show ids drawn at random, excluding
// kids-restricted titles when kidsMode is set. Selection uses the injected
// random source.
func (r *MemoryRepo) RandomIDs(_ context.Context, limit int, kidsMode bool) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pool []string
	for id, t := range r.titles {
		if kidsMode && !policy.KidsAllowed(t.Rating) {
			continue
		}
		pool = append(pool, id)
	}
	// Deterministic base order before shuffling keeps seeded runs stable.
	sort.Strings(pool)
	if r.rng != nil {
		r.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

// IDsByGenre returns up to limit show ids whose indicator at genreIdx is
// set, excluding excludeID and kids-restricted titles when kidsMode is set.
func (r *MemoryRepo) IDsByGenre(_ context.Context, genreIdx int, excludeID string, limit int, kidsMode bool) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	var ids []string
	for id := range r.titles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := r.titles[id]
		if id == excludeID || !t.Genres.Has(genreIdx) {
			continue
		}
		if kidsMode && !policy.KidsAllowed(t.Rating) {
			continue
		}
		out = append(out, id)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
