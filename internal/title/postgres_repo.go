package title

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

// quoted genre indicator columns in taxonomy order; several contain spaces.
func genreColumns() string {
	cols := genre.Columns()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ", ")
}

func selectColumns() string {
	return `show_id, COALESCE(type, ''), title, COALESCE(description, ''), COALESCE(image_url, ''),
	       COALESCE(release_year, 0), COALESCE(director, ''), COALESCE("cast", ''), COALESCE(duration, ''),
	       COALESCE(country, ''), COALESCE(rating, ''), ` + genreColumns()
}

func scanDest(t *Title, flagInts []int) []any {
	dest := []any{
		&t.ShowID, &t.Type, &t.Name, &t.Description, &t.ImageURL,
		&t.ReleaseYear, &t.Director, &t.Cast, &t.Duration,
		&t.Country, &t.Rating,
	}
	for i := range flagInts {
		dest = append(dest, &flagInts[i])
	}
	return dest
}

func flagsOf(flagInts []int) genre.Flags {
	f := genre.NewFlags()
	for i, v := range flagInts {
		if v == 1 {
			f.Set(i)
		}
	}
	return f
}

func kidsClause(args *[]any, argn *int) string {
	denied := policy.KidsDeniedRatings()
	placeholders := make([]string, len(denied))
	for i, rating := range denied {
		placeholders[i] = fmt.Sprintf("$%d", *argn)
		*args = append(*args, rating)
		*argn++
	}
	return "(rating IS NULL OR rating NOT IN (" + strings.Join(placeholders, ", ") + "))"
}

func (r *PostgresRepo) List(ctx context.Context, f Filter) ([]Title, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", argn))
		args = append(args, f.Search)
		argn++
	}

	if f.GenreIdx != nil {
		clauses = append(clauses, `"`+genre.Taxonomy[*f.GenreIdx].Column+`" = 1`)
	}

	if f.KidsMode {
		clauses = append(clauses, kidsClause(&args, &argn))
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := "SELECT COUNT(*) FROM movies_titles " + where
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM movies_titles
		%s
		ORDER BY title ASC, show_id ASC
		LIMIT $%d OFFSET $%d`,
		selectColumns(), where, argn, argn+1)

	argsWithPage := append(append([]any{}, args...), f.Limit, f.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Title
	for rows.Next() {
		var t Title
		flagInts := make([]int, genre.Count)
		if err := rows.Scan(scanDest(&t, flagInts)...); err != nil {
			return nil, 0, err
		}
		t.Genres = flagsOf(flagInts)
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Title, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM movies_titles
		WHERE show_id = $1
		LIMIT 1`, selectColumns())

	var t Title
	flagInts := make([]int, genre.Count)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(scanDest(&t, flagInts)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Title{}, ErrNotFound
		}
		return Title{}, err
	}
	t.Genres = flagsOf(flagInts)
	return t, nil
}

func (r *PostgresRepo) GenresInUse(ctx context.Context) ([]string, error) {
	cols := genre.Columns()
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf(`COALESCE(MAX("%s"), 0)`, c)
	}
	query := "SELECT " + strings.Join(parts, ", ") + " FROM movies_titles"

	present := make([]int, genre.Count)
	dest := make([]any, genre.Count)
	for i := range present {
		dest[i] = &present[i]
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query).Scan(dest...); err != nil {
		return nil, err
	}

	var labels []string
	for i, v := range present {
		if v == 1 {
			labels = append(labels, genre.Taxonomy[i].Label)
		}
	}
	return labels, nil
}

func (r *PostgresRepo) Create(ctx context.Context, t *Title) error {
	cols := []string{"show_id", "type", "title", "description", "image_url", "release_year", "director", `"cast"`, "duration", "country", "rating"}
	args := []any{t.ShowID, t.Type, t.Name, t.Description, t.ImageURL, t.ReleaseYear, t.Director, t.Cast, t.Duration, t.Country, t.Rating}
	for i, c := range genre.Columns() {
		cols = append(cols, `"`+c+`"`)
		args = append(args, boolToInt(t.Genres.Has(i)))
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf("INSERT INTO movies_titles (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, t *Title) error {
	sets := []string{}
	args := []any{}
	argn := 1

	add := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argn))
		args = append(args, v)
		argn++
	}

	add("type", t.Type)
	add("title", t.Name)
	add("description", t.Description)
	add("image_url", t.ImageURL)
	add("release_year", t.ReleaseYear)
	add("director", t.Director)
	add(`"cast"`, t.Cast)
	add("duration", t.Duration)
	add("country", t.Country)
	add("rating", t.Rating)
	for i, c := range genre.Columns() {
		add(`"`+c+`"`, boolToInt(t.Genres.Has(i)))
	}

	sql := fmt.Sprintf("UPDATE movies_titles SET %s WHERE show_id = $%d", strings.Join(sets, ", "), argn)
	args = append(args, t.ShowID)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM movies_titles WHERE show_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
