package rating

import "context"

// Repository persists ratings and reviews for titles.
type Repository interface {
	Upsert(ctx context.Context, rt *Rating) error
	GetByID(ctx context.Context, id int64) (Rating, error)
	ListByShow(ctx context.Context, showID string) ([]Rating, error)
	ListByUser(ctx context.Context, userID string) ([]Rating, error)
	Summary(ctx context.Context, showID string) (average float64, count int, err error)
	Delete(ctx context.Context, id int64) error
}
