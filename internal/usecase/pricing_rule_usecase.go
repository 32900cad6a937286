package usecase

import (
	"context"
	"errors"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrPricingRuleAlreadyExists = errors.New("pricing rule already exists for material")
	ErrInvalidPricingRuleID     = errors.New("invalid pricing rule id")
)

// IPricingRuleUseCase is the admin side of the pricing coefficients. A rule
// change applies to every quote computed afterwards; inquiries keep the
// price they were stored with.
type IPricingRuleUseCase interface {
	List(ctx context.Context) ([]entities.PricingRule, error)
	GetByMaterialID(ctx context.Context, materialID int64) (entities.PricingRule, error)
	Create(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
	Update(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
}

type PricingRuleUseCase struct {
	repo      interfaces.IPricingRuleRepository
	materials interfaces.IMaterialRepository
}

var _ IPricingRuleUseCase = (*PricingRuleUseCase)(nil)

func NewPricingRuleUseCase(repo interfaces.IPricingRuleRepository, materials interfaces.IMaterialRepository) *PricingRuleUseCase {
	return &PricingRuleUseCase{repo: repo, materials: materials}
}

func (u *PricingRuleUseCase) List(ctx context.Context) ([]entities.PricingRule, error) {
	return u.repo.List(ctx)
}

func (u *PricingRuleUseCase) GetByMaterialID(ctx context.Context, materialID int64) (entities.PricingRule, error) {
	if materialID <= 0 {
		return entities.PricingRule{}, ErrInvalidMaterialID
	}
	r, err := u.repo.GetByMaterialID(ctx, materialID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if r.ID == 0 {
		return entities.PricingRule{}, pricing.ErrPricingRuleNotFound
	}
	return r, nil
}

func (u *PricingRuleUseCase) Create(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error) {
	if r.MaterialID <= 0 {
		return entities.PricingRule{}, ErrInvalidMaterialID
	}
	if err := pricing.ValidateRule(r); err != nil {
		return entities.PricingRule{}, err
	}

	m, err := u.materials.GetByID(ctx, r.MaterialID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if m.ID == 0 {
		return entities.PricingRule{}, pricing.ErrMaterialNotFound
	}

	r.ID = 0
	created, err := u.repo.Create(ctx, r)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.PricingRule{}, ErrPricingRuleAlreadyExists
	}
	return created, err
}

func (u *PricingRuleUseCase) Update(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error) {
	if r.ID <= 0 {
		return entities.PricingRule{}, ErrInvalidPricingRuleID
	}
	if err := pricing.ValidateRule(r); err != nil {
		return entities.PricingRule{}, err
	}

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if updated.ID == 0 {
		return entities.PricingRule{}, pricing.ErrPricingRuleNotFound
	}
	return updated, nil
}
