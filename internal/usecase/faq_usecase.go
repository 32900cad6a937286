package usecase

import (
	"context"
	"errors"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrFAQNotFound  = errors.New("faq not found")
	ErrInvalidFAQID = errors.New("invalid faq id")
	ErrInvalidFAQ   = errors.New("invalid faq")
)

type IFAQUseCase interface {
	List(ctx context.Context) ([]entities.FAQ, error)
	Create(ctx context.Context, f entities.FAQ) (entities.FAQ, error)
	Update(ctx context.Context, f entities.FAQ) (entities.FAQ, error)
	Delete(ctx context.Context, id int64) error
}

type FAQUseCase struct {
	repo interfaces.IFAQRepository
}

var _ IFAQUseCase = (*FAQUseCase)(nil)

func NewFAQUseCase(repo interfaces.IFAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

func (u *FAQUseCase) List(ctx context.Context) ([]entities.FAQ, error) {
	return u.repo.List(ctx)
}

func (u *FAQUseCase) Create(ctx context.Context, f entities.FAQ) (entities.FAQ, error) {
	if err := normalizeFAQ(&f); err != nil {
		return entities.FAQ{}, err
	}
	f.ID = 0
	return u.repo.Create(ctx, f)
}

func (u *FAQUseCase) Update(ctx context.Context, f entities.FAQ) (entities.FAQ, error) {
	if f.ID <= 0 {
		return entities.FAQ{}, ErrInvalidFAQID
	}
	if err := normalizeFAQ(&f); err != nil {
		return entities.FAQ{}, err
	}
	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.FAQ{}, err
	}
	if updated.ID == 0 {
		return entities.FAQ{}, ErrFAQNotFound
	}
	return updated, nil
}

func (u *FAQUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidFAQID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFAQNotFound
	}
	return nil
}

func normalizeFAQ(f *entities.FAQ) error {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	f.Category = strings.TrimSpace(f.Category)
	if f.Question == "" || f.Answer == "" {
		return ErrInvalidFAQ
	}
	if f.OrderPosition < 0 {
		return ErrInvalidFAQ
	}
	return nil
}
