package usecase

import (
	"context"
	"errors"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidReviewID = errors.New("invalid review id")
	ErrInvalidReview   = errors.New("invalid review")
)

// IReviewUseCase: customers submit reviews, only verified ones are public.
type IReviewUseCase interface {
	ListPublic(ctx context.Context, limit int) ([]entities.Review, error)
	ListAll(ctx context.Context) ([]entities.Review, error)
	Submit(ctx context.Context, r entities.Review) (entities.Review, error)
	Update(ctx context.Context, r entities.Review) (entities.Review, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewUseCase struct {
	repo interfaces.IReviewRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

func (u *ReviewUseCase) ListPublic(ctx context.Context, limit int) ([]entities.Review, error) {
	return u.repo.List(ctx, true, limit)
}

func (u *ReviewUseCase) ListAll(ctx context.Context) ([]entities.Review, error) {
	return u.repo.List(ctx, false, 0)
}

func (u *ReviewUseCase) Submit(ctx context.Context, r entities.Review) (entities.Review, error) {
	if err := normalizeReview(&r); err != nil {
		return entities.Review{}, err
	}
	r.ID = 0
	r.Verified = false
	return u.repo.Create(ctx, r)
}

func (u *ReviewUseCase) Update(ctx context.Context, r entities.Review) (entities.Review, error) {
	if r.ID <= 0 {
		return entities.Review{}, ErrInvalidReviewID
	}
	if err := normalizeReview(&r); err != nil {
		return entities.Review{}, err
	}
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}
	if updated.ID == 0 {
		return entities.Review{}, ErrReviewNotFound
	}
	return updated, nil
}

func (u *ReviewUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidReviewID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}
	return nil
}

func normalizeReview(r *entities.Review) error {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Comment = strings.TrimSpace(r.Comment)
	if r.CustomerName == "" || r.Comment == "" {
		return ErrInvalidReview
	}
	if r.Rating < entities.MinReviewRating || r.Rating > entities.MaxReviewRating {
		return ErrInvalidReview
	}
	return nil
}
