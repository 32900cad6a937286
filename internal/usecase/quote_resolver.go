package usecase

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"
)

// QuoteResult is a computed quote together with the material it was priced
// against (the configurator shows the material name).
type QuoteResult struct {
	Quote    pricing.Quote
	Material entities.Material
}

// resolveQuote loads the current material and pricing rule and runs the
// pricing engine. Quote previews, offer documents and inquiry submission all
// price through here.
func resolveQuote(
	ctx context.Context,
	materials interfaces.IMaterialRepository,
	rules interfaces.IPricingRuleRepository,
	cfg pricing.Configuration,
) (QuoteResult, error) {
	if err := requireConfiguration(cfg); err != nil {
		return QuoteResult{}, err
	}
	if err := cfg.Validate(); err != nil {
		return QuoteResult{}, err
	}
	if cfg.MaterialID < 0 {
		return QuoteResult{}, pricing.ErrMaterialNotFound
	}

	material, err := materials.GetByID(ctx, cfg.MaterialID)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("load material %d: %w", cfg.MaterialID, err)
	}
	if material.ID == 0 {
		return QuoteResult{}, fmt.Errorf("%w: id %d", pricing.ErrMaterialNotFound, cfg.MaterialID)
	}

	rule, err := rules.GetByMaterialID(ctx, material.ID)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("load pricing rule for material %d: %w", material.ID, err)
	}
	var rulePtr *entities.PricingRule
	if rule.ID != 0 {
		rulePtr = &rule
	}

	q, err := pricing.Compute(cfg, &material, rulePtr)
	if err != nil {
		return QuoteResult{}, err
	}
	return QuoteResult{Quote: q, Material: material}, nil
}

// requireConfiguration reports the first configuration field that was not
// sent at all. Present but out-of-range values are left to the engine.
func requireConfiguration(cfg pricing.Configuration) error {
	switch {
	case cfg.WidthMM == 0:
		return &ValidationError{Field: "width_mm"}
	case cfg.HeightMM == 0:
		return &ValidationError{Field: "height_mm"}
	case cfg.MaterialID == 0:
		return &ValidationError{Field: "material_id"}
	}
	return nil
}
