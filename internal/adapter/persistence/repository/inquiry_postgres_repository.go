package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const inquirySelect = `
	SELECT i.id::text, i.customer_name, i.customer_email, i.customer_phone,
		i.material_id, COALESCE(m.name, ''), i.width_mm, i.height_mm, i.model_type,
		i.has_led, i.led_type, i.calculated_price, i.message, i.attachment_url,
		i.status, i.created_at, i.updated_at`

// InquiryPostgresRepository persists inquiries in the inquiries table.
// Reads join materials for the display name.
type InquiryPostgresRepository struct {
	db DBTX
}

var _ interfaces.IInquiryRepository = (*InquiryPostgresRepository)(nil)

func NewInquiryPostgresRepository(db DBTX) *InquiryPostgresRepository {
	return &InquiryPostgresRepository{db: db}
}

func (r *InquiryPostgresRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	const q = `
		INSERT INTO inquiries (
			id, customer_name, customer_email, customer_phone, material_id,
			width_mm, height_mm, model_type, has_led, led_type, calculated_price,
			message, attachment_url, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, q,
		i.ID, i.CustomerName, i.CustomerEmail, i.CustomerPhone, i.MaterialID,
		i.WidthMM, i.HeightMM, string(i.ModelType), i.HasLED, string(i.LEDType), i.CalculatedPrice,
		i.Message, i.AttachmentURL, string(i.Status), i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return entities.Inquiry{}, fmt.Errorf("insert inquiry: %w", err)
	}
	return i, nil
}

func (r *InquiryPostgresRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	q := inquirySelect + `
		FROM inquiries i
		LEFT JOIN materials m ON m.id = i.material_id
		WHERE i.id::text = $1`

	i, err := scanInquiry(r.db.QueryRow(ctx, q, id))
	if isNoRows(err) {
		return entities.Inquiry{}, nil
	}
	return i, err
}

func (r *InquiryPostgresRepository) List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error) {
	q := inquirySelect + `
		FROM inquiries i
		LEFT JOIN materials m ON m.id = i.material_id
		WHERE $1 = '' OR i.status = $1
		ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, q, string(status))
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	out := []entities.Inquiry{}
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// UpdateStatus touches status and updated_at only. The price snapshot is
// never rewritten.
func (r *InquiryPostgresRepository) UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) (entities.Inquiry, error) {
	q := `
		WITH i AS (
			UPDATE inquiries SET status = $2, updated_at = now()
			WHERE id::text = $1
			RETURNING *
		)` + inquirySelect + `
		FROM i LEFT JOIN materials m ON m.id = i.material_id`

	i, err := scanInquiry(r.db.QueryRow(ctx, q, id, string(status)))
	if isNoRows(err) {
		return entities.Inquiry{}, nil
	}
	return i, err
}

func scanInquiry(row pgx.Row) (entities.Inquiry, error) {
	var (
		i                         entities.Inquiry
		modelType, ledType, state string
	)
	err := row.Scan(
		&i.ID, &i.CustomerName, &i.CustomerEmail, &i.CustomerPhone,
		&i.MaterialID, &i.MaterialName, &i.WidthMM, &i.HeightMM, &modelType,
		&i.HasLED, &ledType, &i.CalculatedPrice, &i.Message, &i.AttachmentURL,
		&state, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return entities.Inquiry{}, err
	}
	i.ModelType = entities.ModelType(modelType)
	i.LEDType = entities.LEDType(ledType)
	i.Status = entities.InquiryStatus(state)
	return i, nil
}
