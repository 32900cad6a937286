package usecase

import (
	"context"
	"math"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

type IStatsUseCase interface {
	Get(ctx context.Context) (entities.SiteStats, error)
}

type StatsUseCase struct {
	works   interfaces.IWorkRepository
	reviews interfaces.IReviewRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(works interfaces.IWorkRepository, reviews interfaces.IReviewRepository) *StatsUseCase {
	return &StatsUseCase{works: works, reviews: reviews}
}

func (u *StatsUseCase) Get(ctx context.Context) (entities.SiteStats, error) {
	works, err := u.works.Count(ctx)
	if err != nil {
		return entities.SiteStats{}, err
	}
	count, avg, err := u.reviews.VerifiedRatings(ctx)
	if err != nil {
		return entities.SiteStats{}, err
	}
	return entities.SiteStats{
		CompletedProjects: works,
		AvgRating:         math.Round(avg*10) / 10,
		ReviewCount:       count,
	}, nil
}
