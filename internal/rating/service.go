package rating

import (
	"context"
	"errors"

	"movieapi/internal/platform/sanitize"
	"movieapi/internal/title"
)

var ErrForbidden = errors.New("forbidden")

type Service struct {
	repo   Repository
	titles *title.Service
}

func NewService(repo Repository, titles *title.Service) *Service {
	return &Service{repo: repo, titles: titles}
}

// Upsert stores a user's rating for a title, replacing any earlier one.
// The review text is sanitized before it is written.
func (s *Service) Upsert(ctx context.Context, userID, showID string, stars int, review string) (Rating, error) {
	if _, err := s.titles.GetByID(ctx, showID, false); err != nil {
		return Rating{}, err
	}

	rt := Rating{
		UserID: userID,
		ShowID: showID,
		Stars:  stars,
		Review: sanitize.Clean(review),
	}
	if err := s.repo.Upsert(ctx, &rt); err != nil {
		return Rating{}, err
	}
	return rt, nil
}

// ListByShow returns a title's ratings newest first. Reviews are
// HTML-encoded so callers can render them directly.
func (s *Service) ListByShow(ctx context.Context, showID string) ([]Rating, error) {
	ratings, err := s.repo.ListByShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	encodeReviews(ratings)
	return ratings, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Rating, error) {
	ratings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	encodeReviews(ratings)
	return ratings, nil
}

func (s *Service) Summary(ctx context.Context, showID string) (float64, int, error) {
	return s.repo.Summary(ctx, showID)
}

// Delete removes a rating. Users may delete their own; admins may
// delete any.
func (s *Service) Delete(ctx context.Context, id int64, requesterID string, isAdmin bool) error {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && rt.UserID != requesterID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func encodeReviews(ratings []Rating) {
	for i := range ratings {
		if ratings[i].Review != "" {
			ratings[i].Review = sanitize.Encode(ratings[i].Review)
		}
	}
}
