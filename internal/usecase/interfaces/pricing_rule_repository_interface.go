package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IPricingRuleRepository abstracts persistence for PricingRule.
//
// There is exactly one rule per material: Create returns ErrDuplicate when the
// material already has one. Missing rows come back as a zero PricingRule.
type IPricingRuleRepository interface {
	List(ctx context.Context) ([]entities.PricingRule, error)
	GetByID(ctx context.Context, id int64) (entities.PricingRule, error)
	GetByMaterialID(ctx context.Context, materialID int64) (entities.PricingRule, error)
	Create(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
	Update(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
}
