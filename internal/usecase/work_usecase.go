package usecase

import (
	"context"
	"errors"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrWorkNotFound  = errors.New("work not found")
	ErrInvalidWorkID = errors.New("invalid work id")
	ErrInvalidWork   = errors.New("invalid work")
)

// DefaultWorksLimit caps the public gallery when the caller gives no limit.
const DefaultWorksLimit = 50

type IWorkUseCase interface {
	List(ctx context.Context, limit int) ([]entities.Work, error)
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id int64) error
}

type WorkUseCase struct {
	repo interfaces.IWorkRepository
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

func (u *WorkUseCase) List(ctx context.Context, limit int) ([]entities.Work, error) {
	if limit <= 0 || limit > DefaultWorksLimit {
		limit = DefaultWorksLimit
	}
	return u.repo.List(ctx, limit)
}

func (u *WorkUseCase) Create(ctx context.Context, w entities.Work) (entities.Work, error) {
	if err := normalizeWork(&w); err != nil {
		return entities.Work{}, err
	}
	w.ID = 0
	return u.repo.Create(ctx, w)
}

func (u *WorkUseCase) Update(ctx context.Context, w entities.Work) (entities.Work, error) {
	if w.ID <= 0 {
		return entities.Work{}, ErrInvalidWorkID
	}
	if err := normalizeWork(&w); err != nil {
		return entities.Work{}, err
	}
	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Work{}, err
	}
	if updated.ID == 0 {
		return entities.Work{}, ErrWorkNotFound
	}
	return updated, nil
}

func (u *WorkUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidWorkID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkNotFound
	}
	return nil
}

func normalizeWork(w *entities.Work) error {
	w.Title = strings.TrimSpace(w.Title)
	if w.Title == "" {
		return ErrInvalidWork
	}
	if w.MaterialID != nil && *w.MaterialID <= 0 {
		w.MaterialID = nil
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.Images == nil {
		w.Images = []string{}
	}
	return nil
}
