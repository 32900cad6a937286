package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IMaterialRepository abstracts persistence for Material.
//
// Lookups by id return a zero Material (ID == 0) and a nil error when the
// row does not exist; the use cases turn that into a not-found error.
type IMaterialRepository interface {
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id int64) (entities.Material, error)
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
