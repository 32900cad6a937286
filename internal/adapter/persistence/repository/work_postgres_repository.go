package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const workSelect = `
	SELECT w.id, w.title, w.description, w.material_id, COALESCE(m.name, ''),
		w.dimensions, w.has_led, w.tags, w.images, w.featured, w.created_at, w.updated_at`

type WorkPostgresRepository struct {
	db DBTX
}

var _ interfaces.IWorkRepository = (*WorkPostgresRepository)(nil)

func NewWorkPostgresRepository(db DBTX) *WorkPostgresRepository {
	return &WorkPostgresRepository{db: db}
}

func (r *WorkPostgresRepository) List(ctx context.Context, limit int) ([]entities.Work, error) {
	q := workSelect + `
		FROM works w
		LEFT JOIN materials m ON m.id = w.material_id
		ORDER BY w.featured DESC, w.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()

	out := []entities.Work{}
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WorkPostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM works`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count works: %w", err)
	}
	return n, nil
}

func (r *WorkPostgresRepository) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	q := `
		WITH w AS (
			INSERT INTO works (title, description, material_id, dimensions, has_led, tags, images, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)` + workSelect + `
		FROM w LEFT JOIN materials m ON m.id = w.material_id`

	return scanWork(r.db.QueryRow(ctx, q,
		w.Title, w.Description, w.MaterialID, w.Dimensions, w.HasLED,
		nonNilStrings(w.Tags), nonNilStrings(w.Images), w.Featured,
	))
}

func (r *WorkPostgresRepository) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	q := `
		WITH w AS (
			UPDATE works SET
				title = $2, description = $3, material_id = $4, dimensions = $5,
				has_led = $6, tags = $7, images = $8, featured = $9, updated_at = now()
			WHERE id = $1
			RETURNING *
		)` + workSelect + `
		FROM w LEFT JOIN materials m ON m.id = w.material_id`

	updated, err := scanWork(r.db.QueryRow(ctx, q,
		w.ID, w.Title, w.Description, w.MaterialID, w.Dimensions, w.HasLED,
		nonNilStrings(w.Tags), nonNilStrings(w.Images), w.Featured,
	))
	if isNoRows(err) {
		return entities.Work{}, nil
	}
	return updated, err
}

func (r *WorkPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM works WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete work %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanWork(row pgx.Row) (entities.Work, error) {
	var w entities.Work
	err := row.Scan(
		&w.ID, &w.Title, &w.Description, &w.MaterialID, &w.MaterialName,
		&w.Dimensions, &w.HasLED, &w.Tags, &w.Images, &w.Featured, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}
