package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

type IFAQRepository interface {
	List(ctx context.Context) ([]entities.FAQ, error)
	Create(ctx context.Context, f entities.FAQ) (entities.FAQ, error)
	Update(ctx context.Context, f entities.FAQ) (entities.FAQ, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
