package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrInvalidMaterialID = errors.New("invalid material id")
	ErrInvalidMaterial   = errors.New("invalid material")
)

type IMaterialUseCase interface {
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id int64) (entities.Material, error)
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id int64) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id int64) (entities.Material, error) {
	if id <= 0 {
		return entities.Material{}, ErrInvalidMaterialID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == 0 {
		return entities.Material{}, pricing.ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	if err := validateMaterial(&m); err != nil {
		return entities.Material{}, err
	}
	m.ID = 0
	return u.repo.Create(ctx, m)
}

func (u *MaterialUseCase) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	if m.ID <= 0 {
		return entities.Material{}, ErrInvalidMaterialID
	}
	if err := validateMaterial(&m); err != nil {
		return entities.Material{}, err
	}
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == 0 {
		return entities.Material{}, pricing.ErrMaterialNotFound
	}
	return updated, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidMaterialID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return pricing.ErrMaterialNotFound
	}
	return nil
}

func validateMaterial(m *entities.Material) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return ErrInvalidMaterial
	}
	if m.PricePerM2 < 0 || math.IsNaN(m.PricePerM2) || math.IsInf(m.PricePerM2, 0) {
		return ErrInvalidMaterial
	}
	for _, t := range m.ThicknessOptions {
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return ErrInvalidMaterial
		}
	}
	return nil
}
