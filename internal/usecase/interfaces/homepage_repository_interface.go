package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IHomepageRepository stores the single homepage settings row. Get returns a
// zero value when the row is missing.
type IHomepageRepository interface {
	Get(ctx context.Context) (entities.HomepageSettings, error)
	Update(ctx context.Context, s entities.HomepageSettings) (entities.HomepageSettings, error)
}
