package recs

import (
	"context"
)

// Repository defines read access to the precomputed recommendation tables
// and to the catalog-backed backfill pools. A missing row is an empty
// result, never an error.
type Repository interface {
	// UserRow returns the ordered candidate ids (up to 5) stored for the
	// given source and internal user key.
	UserRow(ctx context.Context, src Source, key int) ([]string, error)

	// NeighborRow returns the collaborative and content candidate groups
	// (up to 3 each) stored for the given title.
	NeighborRow(ctx context.Context, showID string) (collab, content []string, err error)

	// RandomIDs returns up to limit ids drawn at random from the catalog,
	// excluding kids-restricted titles when kidsMode is set.
	RandomIDs(ctx context.Context, limit int, kidsMode bool) ([]string, error)

	// IDsByGenre returns up to limit ids whose indicator at genreIdx is
	// set, excluding excludeID and, when kidsMode is set, restricted
	// titles.
	IDsByGenre(ctx context.Context, genreIdx int, excludeID string, limit int, kidsMode bool) ([]string, error)
}
