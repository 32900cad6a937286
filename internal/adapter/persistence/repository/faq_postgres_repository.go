package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const faqColumns = `id, question, answer, category, order_position, created_at, updated_at`

type FAQPostgresRepository struct {
	db DBTX
}

var _ interfaces.IFAQRepository = (*FAQPostgresRepository)(nil)

func NewFAQPostgresRepository(db DBTX) *FAQPostgresRepository {
	return &FAQPostgresRepository{db: db}
}

func (r *FAQPostgresRepository) List(ctx context.Context) ([]entities.FAQ, error) {
	rows, err := r.db.Query(ctx, `SELECT `+faqColumns+` FROM faq ORDER BY order_position, id`)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	defer rows.Close()

	out := []entities.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FAQPostgresRepository) Create(ctx context.Context, f entities.FAQ) (entities.FAQ, error) {
	const q = `
		INSERT INTO faq (question, answer, category, order_position)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + faqColumns

	return scanFAQ(r.db.QueryRow(ctx, q, f.Question, f.Answer, f.Category, f.OrderPosition))
}

func (r *FAQPostgresRepository) Update(ctx context.Context, f entities.FAQ) (entities.FAQ, error) {
	const q = `
		UPDATE faq SET question = $2, answer = $3, category = $4, order_position = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + faqColumns

	updated, err := scanFAQ(r.db.QueryRow(ctx, q, f.ID, f.Question, f.Answer, f.Category, f.OrderPosition))
	if isNoRows(err) {
		return entities.FAQ{}, nil
	}
	return updated, err
}

func (r *FAQPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM faq WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete faq %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanFAQ(row pgx.Row) (entities.FAQ, error) {
	var f entities.FAQ
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.OrderPosition, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}
