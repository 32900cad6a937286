package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const pricingRuleColumns = `id, material_id, base_price_m2, model_double_multiplier,
	model_3d_markup_percent, led_fixed_price, minimum_order, updated_at`

// PricingRulePostgresRepository persists rules in pricing_config. The
// material_id column is UNIQUE, which is what enforces one rule per
// material.
type PricingRulePostgresRepository struct {
	db DBTX
}

var _ interfaces.IPricingRuleRepository = (*PricingRulePostgresRepository)(nil)

func NewPricingRulePostgresRepository(db DBTX) *PricingRulePostgresRepository {
	return &PricingRulePostgresRepository{db: db}
}

func (r *PricingRulePostgresRepository) List(ctx context.Context) ([]entities.PricingRule, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pricingRuleColumns+` FROM pricing_config ORDER BY material_id`)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	defer rows.Close()

	out := []entities.PricingRule{}
	for rows.Next() {
		pr, err := scanPricingRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (r *PricingRulePostgresRepository) GetByID(ctx context.Context, id int64) (entities.PricingRule, error) {
	return r.getOne(ctx, `SELECT `+pricingRuleColumns+` FROM pricing_config WHERE id = $1`, id)
}

func (r *PricingRulePostgresRepository) GetByMaterialID(ctx context.Context, materialID int64) (entities.PricingRule, error) {
	return r.getOne(ctx, `SELECT `+pricingRuleColumns+` FROM pricing_config WHERE material_id = $1`, materialID)
}

func (r *PricingRulePostgresRepository) getOne(ctx context.Context, q string, arg int64) (entities.PricingRule, error) {
	pr, err := scanPricingRule(r.db.QueryRow(ctx, q, arg))
	if isNoRows(err) {
		return entities.PricingRule{}, nil
	}
	return pr, err
}

func (r *PricingRulePostgresRepository) Create(ctx context.Context, pr entities.PricingRule) (entities.PricingRule, error) {
	const q = `
		INSERT INTO pricing_config (material_id, base_price_m2, model_double_multiplier,
			model_3d_markup_percent, led_fixed_price, minimum_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + pricingRuleColumns

	created, err := scanPricingRule(r.db.QueryRow(ctx, q,
		pr.MaterialID, pr.BasePriceM2, pr.ModelDoubleMultiplier,
		pr.Model3DMarkupPercent, pr.LEDFixedPrice, pr.MinimumOrder,
	))
	if isUniqueViolation(err) {
		return entities.PricingRule{}, interfaces.ErrDuplicate
	}
	return created, err
}

// Update changes the coefficients only; a rule never moves to another
// material.
func (r *PricingRulePostgresRepository) Update(ctx context.Context, pr entities.PricingRule) (entities.PricingRule, error) {
	const q = `
		UPDATE pricing_config SET
			base_price_m2 = $2, model_double_multiplier = $3, model_3d_markup_percent = $4,
			led_fixed_price = $5, minimum_order = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + pricingRuleColumns

	updated, err := scanPricingRule(r.db.QueryRow(ctx, q,
		pr.ID, pr.BasePriceM2, pr.ModelDoubleMultiplier,
		pr.Model3DMarkupPercent, pr.LEDFixedPrice, pr.MinimumOrder,
	))
	if isNoRows(err) {
		return entities.PricingRule{}, nil
	}
	return updated, err
}

func scanPricingRule(row pgx.Row) (entities.PricingRule, error) {
	var pr entities.PricingRule
	err := row.Scan(
		&pr.ID, &pr.MaterialID, &pr.BasePriceM2, &pr.ModelDoubleMultiplier,
		&pr.Model3DMarkupPercent, &pr.LEDFixedPrice, &pr.MinimumOrder, &pr.UpdatedAt,
	)
	return pr, err
}
