// Package pricing computes sign quotes from a configuration and the
// material's pricing rule. It is pure: no I/O, no clock, no shared state.
// The public quote endpoint, the PDF offer and inquiry submission all go
// through Compute, so a persisted price always matches what was quoted.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"laserwood/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDimension    = errors.New("invalid dimension")
	ErrInvalidModelType    = errors.New("invalid model type")
	ErrInvalidLEDType      = errors.New("invalid led type")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	ErrInvalidPrice        = errors.New("invalid price per m2")
	ErrInvalidPricingRule  = errors.New("invalid pricing rule")
)

// RoundingStep is the granularity of customer-facing prices. Prices are
// always rounded up to it, never down.
const (
	RoundingStep         = 100
	roundingDigits int32 = 2 // RoundingStep == 10^roundingDigits
)

// Configuration is the customer's sign as chosen in the configurator.
type Configuration struct {
	WidthMM    float64
	HeightMM   float64
	MaterialID int64
	ModelType  entities.ModelType
	HasLED     bool
	LEDType    entities.LEDType
}

// Breakdown explains how a quote was reached. Money values are rounded to
// two decimals and the area to four, for display and auditing only.
type Breakdown struct {
	AreaM2          float64 `json:"area_m2"`
	PricePerM2      float64 `json:"price_per_m2"`
	MaterialCost    float64 `json:"material_cost"`
	ModelMultiplier float64 `json:"model_multiplier"`
	ModelSubtotal   float64 `json:"model_subtotal"`
	LEDCost         float64 `json:"led_cost"`
	Subtotal        float64 `json:"subtotal"`
	MinimumOrder    float64 `json:"minimum_order"`
	MinimumApplied  bool    `json:"minimum_applied"`
	FinalPrice      float64 `json:"final_price"`
}

type Quote struct {
	Price     float64
	Breakdown Breakdown
}

func (c Configuration) Validate() error {
	if !positive(c.WidthMM) {
		return fmt.Errorf("%w: width_mm must be positive, got %v", ErrInvalidDimension, c.WidthMM)
	}
	if !positive(c.HeightMM) {
		return fmt.Errorf("%w: height_mm must be positive, got %v", ErrInvalidDimension, c.HeightMM)
	}
	if !c.ModelType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidModelType, c.ModelType)
	}
	if c.HasLED && c.LEDType != "" && !c.LEDType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLEDType, c.LEDType)
	}
	return nil
}

// ValidateRule rejects coefficients that would make a model or LED option
// cheaper than the plain sign.
func ValidateRule(rule entities.PricingRule) error {
	switch {
	case !finite(rule.BasePriceM2) || rule.BasePriceM2 < 0:
		return fmt.Errorf("%w: base_price_m2 must not be negative", ErrInvalidPricingRule)
	case !finite(rule.ModelDoubleMultiplier) || rule.ModelDoubleMultiplier < 1:
		return fmt.Errorf("%w: model_double_multiplier must be at least 1", ErrInvalidPricingRule)
	case !finite(rule.Model3DMarkupPercent) || rule.Model3DMarkupPercent < 0:
		return fmt.Errorf("%w: model_3d_markup_percent must not be negative", ErrInvalidPricingRule)
	case !finite(rule.LEDFixedPrice) || rule.LEDFixedPrice < 0:
		return fmt.Errorf("%w: led_fixed_price must not be negative", ErrInvalidPricingRule)
	case !finite(rule.MinimumOrder) || rule.MinimumOrder < 0:
		return fmt.Errorf("%w: minimum_order must not be negative", ErrInvalidPricingRule)
	}
	return nil
}

// Compute prices cfg against an already resolved material and its rule.
//
// Order of operations: area, base = area * unit price, model adjustment on
// base, LED add-on, minimum order floor, round up to RoundingStep.
func Compute(cfg Configuration, material *entities.Material, rule *entities.PricingRule) (Quote, error) {
	if err := cfg.Validate(); err != nil {
		return Quote{}, err
	}
	if material == nil || material.ID == 0 {
		return Quote{}, ErrMaterialNotFound
	}
	if cfg.MaterialID != 0 && cfg.MaterialID != material.ID {
		return Quote{}, fmt.Errorf("%w: configuration references material %d, got %d", ErrMaterialNotFound, cfg.MaterialID, material.ID)
	}
	if rule == nil || rule.MaterialID != material.ID {
		return Quote{}, fmt.Errorf("%w: material %d", ErrPricingRuleNotFound, material.ID)
	}
	if err := ValidateRule(*rule); err != nil {
		return Quote{}, err
	}

	unit, err := unitPrice(material, rule)
	if err != nil {
		return Quote{}, err
	}

	area := decimal.NewFromFloat(cfg.WidthMM).
		Mul(decimal.NewFromFloat(cfg.HeightMM)).
		Shift(-6)
	materialCost := area.Mul(unit)

	multiplier := decimal.NewFromInt(1)
	switch cfg.ModelType {
	case entities.ModelDouble:
		multiplier = decimal.NewFromFloat(rule.ModelDoubleMultiplier)
	case entities.Model3DLetters:
		multiplier = multiplier.Add(decimal.NewFromFloat(rule.Model3DMarkupPercent).Shift(-2))
	}
	modelSubtotal := materialCost.Mul(multiplier)

	led := decimal.Zero
	if cfg.HasLED {
		led = decimal.NewFromFloat(rule.LEDFixedPrice)
	}
	subtotal := modelSubtotal.Add(led)

	minimum := decimal.NewFromFloat(rule.MinimumOrder)
	final, minimumApplied := subtotal, false
	if subtotal.LessThan(minimum) {
		final, minimumApplied = minimum, true
	}

	price := RoundUp(final)

	return Quote{
		Price: price.InexactFloat64(),
		Breakdown: Breakdown{
			AreaM2:          area.Round(4).InexactFloat64(),
			PricePerM2:      unit.InexactFloat64(),
			MaterialCost:    materialCost.Round(2).InexactFloat64(),
			ModelMultiplier: multiplier.InexactFloat64(),
			ModelSubtotal:   modelSubtotal.Round(2).InexactFloat64(),
			LEDCost:         led.InexactFloat64(),
			Subtotal:        subtotal.Round(2).InexactFloat64(),
			MinimumOrder:    minimum.InexactFloat64(),
			MinimumApplied:  minimumApplied,
			FinalPrice:      price.InexactFloat64(),
		},
	}, nil
}

// RoundUp rounds v up to the next multiple of RoundingStep. Multiples are
// returned unchanged, so RoundUp(RoundUp(v)) == RoundUp(v).
func RoundUp(v decimal.Decimal) decimal.Decimal {
	return v.Shift(-roundingDigits).Ceil().Shift(roundingDigits)
}

func unitPrice(material *entities.Material, rule *entities.PricingRule) (decimal.Decimal, error) {
	if rule.BasePriceM2 > 0 {
		return decimal.NewFromFloat(rule.BasePriceM2), nil
	}
	if finite(material.PricePerM2) && material.PricePerM2 > 0 {
		return decimal.NewFromFloat(material.PricePerM2), nil
	}
	return decimal.Zero, fmt.Errorf("%w: material %d has no positive price", ErrInvalidPrice, material.ID)
}

func positive(v float64) bool { return finite(v) && v > 0 }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
