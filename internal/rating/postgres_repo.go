package rating

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (repo *PostgresRepo) Upsert(ctx context.Context, rt *Rating) error {
	const query = `
		INSERT INTO movies_ratings (user_id, show_id, rating, review, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, show_id)
		DO UPDATE SET rating = excluded.rating, review = excluded.review, created_at = now()
		RETURNING rating_id, created_at
	`
	return repo.db.QueryRow(ctx, query, rt.UserID, rt.ShowID, rt.Stars, rt.Review).
		Scan(&rt.ID, &rt.CreatedAt)
}

func (repo *PostgresRepo) GetByID(ctx context.Context, id int64) (Rating, error) {
	const query = `
		SELECT rating_id, user_id, show_id, rating, COALESCE(review, ''), created_at
		FROM movies_ratings
		WHERE rating_id = $1
	`
	var rt Rating
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&rt.ID, &rt.UserID, &rt.ShowID, &rt.Stars, &rt.Review, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return rt, nil
}

func (repo *PostgresRepo) ListByShow(ctx context.Context, showID string) ([]Rating, error) {
	const query = `
		SELECT r.rating_id, r.user_id, r.show_id, r.rating, COALESCE(r.review, ''),
		       COALESCE(u.name, ''), r.created_at
		FROM movies_ratings r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.show_id = $1
		ORDER BY r.created_at DESC, r.rating_id DESC
	`
	rows, err := repo.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.ShowID, &rt.Stars, &rt.Review, &rt.Reviewer, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (repo *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Rating, error) {
	const query = `
		SELECT rating_id, user_id, show_id, rating, COALESCE(review, ''), created_at
		FROM movies_ratings
		WHERE user_id = $1
		ORDER BY created_at DESC, rating_id DESC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.ShowID, &rt.Stars, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (repo *PostgresRepo) Summary(ctx context.Context, showID string) (float64, int, error) {
	const query = `
		SELECT AVG(rating)::FLOAT, COUNT(rating)
		FROM movies_ratings
		WHERE show_id = $1
	`
	var average sql.NullFloat64
	var count int
	if err := repo.db.QueryRow(ctx, query, showID).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	if !average.Valid {
		return 0, 0, nil
	}
	return average.Float64, count, nil
}

func (repo *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := repo.db.Exec(ctx, `DELETE FROM movies_ratings WHERE rating_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
