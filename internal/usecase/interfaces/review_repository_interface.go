package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

type IReviewRepository interface {
	List(ctx context.Context, verifiedOnly bool, limit int) ([]entities.Review, error)
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	Update(ctx context.Context, r entities.Review) (entities.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// VerifiedRatings returns the count and the plain average rating of
	// verified reviews. The average is 0 when there are none.
	VerifiedRatings(ctx context.Context) (count int64, avg float64, err error)
}
