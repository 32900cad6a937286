package entities

import "time"

// PricingRule holds the per-material pricing coefficients.
//
// Storage model (Postgres, table pricing_config):
//   - PK: id
//   - UNIQUE: material_id (exactly one rule per material)
type PricingRule struct {
	ID                    int64     `json:"id"`
	MaterialID            int64     `json:"material_id"`
	BasePriceM2           float64   `json:"base_price_m2"`
	ModelDoubleMultiplier float64   `json:"model_double_multiplier"`
	Model3DMarkupPercent  float64   `json:"model_3d_markup_percent"`
	LEDFixedPrice         float64   `json:"led_fixed_price"`
	MinimumOrder          float64   `json:"minimum_order"`
	UpdatedAt             time.Time `json:"updated_at"`
}
