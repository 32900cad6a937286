package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, customer_name, rating, comment, photo_url, verified, created_at, updated_at`

type ReviewPostgresRepository struct {
	db DBTX
}

var _ interfaces.IReviewRepository = (*ReviewPostgresRepository)(nil)

func NewReviewPostgresRepository(db DBTX) *ReviewPostgresRepository {
	return &ReviewPostgresRepository{db: db}
}

func (r *ReviewPostgresRepository) List(ctx context.Context, verifiedOnly bool, limit int) ([]entities.Review, error) {
	q := `SELECT ` + reviewColumns + ` FROM reviews
		WHERE verified OR NOT $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, verifiedOnly, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := []entities.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewPostgresRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	const q = `
		INSERT INTO reviews (customer_name, rating, comment, photo_url, verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	return scanReview(r.db.QueryRow(ctx, q, rv.CustomerName, rv.Rating, rv.Comment, rv.PhotoURL, rv.Verified))
}

func (r *ReviewPostgresRepository) Update(ctx context.Context, rv entities.Review) (entities.Review, error) {
	const q = `
		UPDATE reviews SET
			customer_name = $2, rating = $3, comment = $4, photo_url = $5, verified = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + reviewColumns

	updated, err := scanReview(r.db.QueryRow(ctx, q, rv.ID, rv.CustomerName, rv.Rating, rv.Comment, rv.PhotoURL, rv.Verified))
	if isNoRows(err) {
		return entities.Review{}, nil
	}
	return updated, err
}

func (r *ReviewPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete review %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReviewPostgresRepository) VerifiedRatings(ctx context.Context) (int64, float64, error) {
	var (
		count int64
		avg   float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM reviews WHERE verified`,
	).Scan(&count, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("verified ratings: %w", err)
	}
	return count, avg, nil
}

func scanReview(row pgx.Row) (entities.Review, error) {
	var rv entities.Review
	err := row.Scan(&rv.ID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.PhotoURL, &rv.Verified, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}
