package title

import (
	"context"
	"sort"

	"movieapi/internal/genre"
	"movieapi/internal/policy"
)

// Service provides catalog query logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new title service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query lists titles matching q. An unrecognized genre label yields
// genre.ErrUnrecognized. Pages past the end return an empty item list with
// correct metadata.
func (s *Service) Query(ctx context.Context, q Query) (PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	f := Filter{
		Search:   q.Search,
		KidsMode: q.KidsMode,
		Limit:    q.PageSize,
		Offset:   (q.Page - 1) * q.PageSize,
	}

	displayed := ""
	if q.Genre != "" {
		idx, err := genre.Index(q.Genre)
		if err != nil {
			return PageResult{}, err
		}
		f.GenreIdx = &idx
		displayed = genre.Taxonomy[idx].Label
	}

	titles, total, err := s.repo.List(ctx, f)
	if err != nil {
		return PageResult{}, err
	}

	items := make([]Item, 0, len(titles))
	for _, t := range titles {
		// When a genre filter was applied the filter value is the
		// displayed genre; membership is already guaranteed and the
		// primary genre could disagree with what the caller asked for.
		g := displayed
		if g == "" {
			g = genre.PrimaryOf(t.Genres)
		}
		items = append(items, itemOf(t, g))
	}

	return PageResult{
		Items:      items,
		TotalCount: total,
		TotalPages: (total + q.PageSize - 1) / q.PageSize,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}, nil
}

// GetByID returns a single hydrated item. Under kids mode a denylisted title
// is reported as ErrNotFound, indistinguishable from a missing one.
func (s *Service) GetByID(ctx context.Context, id string, kidsMode bool) (Item, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if kidsMode && !policy.KidsAllowed(t.Rating) {
		return Item{}, ErrNotFound
	}
	return itemOf(t, genre.PrimaryOf(t.Genres)), nil
}

// Genres returns the sorted labels present in at least one title.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	labels, err := s.repo.GenresInUse(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(labels)
	return labels, nil
}

// Create adds a new title.
func (s *Service) Create(ctx context.Context, t *Title) error {
	if t.Genres == nil {
		t.Genres = genre.NewFlags()
	}
	return s.repo.Create(ctx, t)
}

// Update replaces an existing title.
func (s *Service) Update(ctx context.Context, t *Title) error {
	if t.Genres == nil {
		t.Genres = genre.NewFlags()
	}
	return s.repo.Update(ctx, t)
}

// Delete removes a title.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
