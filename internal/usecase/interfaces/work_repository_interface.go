package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IWorkRepository abstracts persistence for gallery works. List fills
// MaterialName; limit <= 0 means no limit.
type IWorkRepository interface {
	List(ctx context.Context, limit int) ([]entities.Work, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
