package recs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movieapi/internal/genre"
	"movieapi/internal/policy"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func sourceTable(src Source) string {
	switch src {
	case SourceLocation:
		return "location_recommended_shows_ids"
	case SourceBasic:
		return "basic_recommended_shows_ids"
	case SourceStreaming:
		return "streaming_recommended_shows_ids"
	default:
		return ""
	}
}

func (r *PostgresRepo) UserRow(ctx context.Context, src Source, key int) ([]string, error) {
	table := sourceTable(src)
	if table == "" {
		return nil, fmt.Errorf("unknown recommendation source: %d", src)
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(recommended_item_1, ''), COALESCE(recommended_item_2, ''),
		       COALESCE(recommended_item_3, ''), COALESCE(recommended_item_4, ''),
		       COALESCE(recommended_item_5, '')
		FROM %s
		WHERE user_key = $1`, table)

	items := make([]string, 5)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, key).Scan(&items[0], &items[1], &items[2], &items[3], &items[4])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepo) NeighborRow(ctx context.Context, showID string) ([]string, []string, error) {
	const query = `
		SELECT COALESCE(collab1_id, ''), COALESCE(collab2_id, ''), COALESCE(collab3_id, ''),
		       COALESCE(content1_id, ''), COALESCE(content2_id, ''), COALESCE(content3_id, '')
		FROM movie_neighbors
		WHERE show_id = $1`

	row := make([]string, 6)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, showID).Scan(&row[0], &row[1], &row[2], &row[3], &row[4], &row[5])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return row[:3], row[3:], nil
}

func kidsClause(args *[]any, argn *int) string {
	denied := policy.KidsDeniedRatings()
	placeholders := make([]string, len(denied))
	for i, rating := range denied {
		placeholders[i] = fmt.Sprintf("$%d", *argn)
		*args = append(*args, rating)
		*argn++
	}
	return "AND (rating IS NULL OR rating NOT IN (" + strings.Join(placeholders, ", ") + "))"
}

func (r *PostgresRepo) RandomIDs(ctx context.Context, limit int, kidsMode bool) ([]string, error) {
	args := []any{}
	argn := 1

	kids := ""
	if kidsMode {
		kids = kidsClause(&args, &argn)
	}

	query := fmt.Sprintf(`
		SELECT show_id
		FROM movies_titles
		WHERE 1=1 %s
		ORDER BY random()
		LIMIT $%d`, kids, argn)
	args = append(args, limit)

	return r.queryIDs(ctx, query, args)
}

func (r *PostgresRepo) IDsByGenre(ctx context.Context, genreIdx int, excludeID string, limit int, kidsMode bool) ([]string, error) {
	args := []any{excludeID}
	argn := 2

	kids := ""
	if kidsMode {
		kids = kidsClause(&args, &argn)
	}

	query := fmt.Sprintf(`
		SELECT show_id
		FROM movies_titles
		WHERE show_id != $1 AND "%s" = 1 %s
		ORDER BY title ASC, show_id ASC
		LIMIT $%d`, genre.Taxonomy[genreIdx].Column, kids, argn)
	args = append(args, limit)

	return r.queryIDs(ctx, query, args)
}

func (r *PostgresRepo) queryIDs(ctx context.Context, query string, args []any) ([]string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
