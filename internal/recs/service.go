package recs

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"movieapi/internal/genre"
	"movieapi/internal/metrics"
	"movieapi/internal/title"
)

// neighborScanLimit bounds how many same-genre candidates are examined when
// backfilling a short neighbor list.
const neighborScanLimit = 10

// Service assembles recommendation lists from the precomputed tables, with
// deduplication, backfill and kids-mode-aware hydration.
type Service struct {
	repo   Repository
	titles *title.Service
	logger *zap.Logger
}

func NewService(repo Repository, titles *title.Service, logger *zap.Logger) *Service {
	return &Service{repo: repo, titles: titles, logger: logger}
}

// ForUser returns the three per-user lists. Each list is assembled
// independently; candidates missing from the catalog are skipped without
// substitution.
func (s *Service) ForUser(ctx context.Context, externalID string, kidsMode bool) (UserRecommendations, error) {
	key, fellBack := UserKey(externalID)
	if fellBack {
		metrics.MappingFallbacks.Inc()
		s.logger.Debug("user key mapping fallback",
			zap.String("external_id", externalID),
			zap.Int("key", key),
		)
	}

	var out UserRecommendations
	var err error

	if out.LocationBased, err = s.sourceList(ctx, SourceLocation, key, kidsMode); err != nil {
		return UserRecommendations{}, err
	}
	if out.General, err = s.sourceList(ctx, SourceBasic, key, kidsMode); err != nil {
		return UserRecommendations{}, err
	}
	if out.StreamingBased, err = s.sourceList(ctx, SourceStreaming, key, kidsMode); err != nil {
		return UserRecommendations{}, err
	}
	return out, nil
}

func (s *Service) sourceList(ctx context.Context, src Source, key int, kidsMode bool) ([]title.Item, error) {
	row, err := s.repo.UserRow(ctx, src, key)
	if err != nil {
		return nil, err
	}

	ids := dedupe(row, "")
	if ids, err = s.backfillRandom(ctx, ids, kidsMode); err != nil {
		return nil, err
	}
	if len(ids) > listSize {
		ids = ids[:listSize]
	}
	return s.hydrate(ctx, ids, kidsMode)
}

// Neighbors returns up to 5 titles similar to the seed. The collaborative
// group precedes the content group; duplicates and self-references are
// dropped, and a short list is padded with titles sharing the seed's
// primary genre.
func (s *Service) Neighbors(ctx context.Context, showID string, kidsMode bool) ([]title.Item, error) {
	seed, err := s.titles.GetByID(ctx, showID, kidsMode)
	if err != nil {
		return nil, err
	}

	collab, content, err := s.repo.NeighborRow(ctx, showID)
	if err != nil {
		return nil, err
	}

	ids := dedupe(append(append([]string{}, collab...), content...), showID)

	if len(ids) < listSize && seed.Genre != genre.Other {
		idx, gerr := genre.Index(seed.Genre)
		if gerr != nil {
			return nil, gerr
		}
		candidates, cerr := s.repo.IDsByGenre(ctx, idx, showID, neighborScanLimit, kidsMode)
		if cerr != nil {
			return nil, cerr
		}
		ids = appendMissing(ids, candidates, listSize)
	}

	if len(ids) > listSize {
		ids = ids[:listSize]
	}
	return s.hydrate(ctx, ids, kidsMode)
}

func (s *Service) backfillRandom(ctx context.Context, ids []string, kidsMode bool) ([]string, error) {
	if len(ids) >= listSize {
		return ids, nil
	}
	// Over-request by the number already selected so collisions with the
	// precomputed candidates cannot leave the list short.
	candidates, err := s.repo.RandomIDs(ctx, listSize+len(ids), kidsMode)
	if err != nil {
		return nil, err
	}
	return appendMissing(ids, candidates, listSize), nil
}

// hydrate resolves ids into items, preserving the incoming order. Ids that
// no longer resolve are counted and skipped without substitution.
func (s *Service) hydrate(ctx context.Context, ids []string, kidsMode bool) ([]title.Item, error) {
	items := make([]title.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.titles.GetByID(ctx, id, kidsMode)
		if err != nil {
			if errors.Is(err, title.ErrNotFound) {
				metrics.HydrationSkips.Inc()
				s.logger.Debug("hydration skip", zap.String("show_id", id))
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// dedupe drops empty entries, the given self id and duplicates, keeping
// first-seen order.
func dedupe(ids []string, self string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == self || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// appendMissing appends candidates not already present until target is
// reached.
func appendMissing(ids []string, candidates []string, target int) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, c := range candidates {
		if len(ids) >= target {
			break
		}
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		ids = append(ids, c)
	}
	return ids
}
