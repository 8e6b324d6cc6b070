package title

import (
	"context"
)

// Repository defines the contract for title storage. List applies filtering,
// the fixed ordering (title ASC, show id ASC) and pagination, returning the
// page plus the filtered-set size.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Title, int, error)
	GetByID(ctx context.Context, id string) (Title, error)
	GenresInUse(ctx context.Context) ([]string, error)
	Create(ctx context.Context, t *Title) error
	Update(ctx context.Context, t *Title) error
	Delete(ctx context.Context, id string) error
}
