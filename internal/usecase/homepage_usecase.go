package usecase

import (
	"context"
	"errors"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

var (
	ErrHomepageNotFound = errors.New("homepage settings not found")
	ErrInvalidHomepage  = errors.New("invalid homepage settings")
)

type IHomepageUseCase interface {
	Get(ctx context.Context) (entities.HomepageSettings, error)
	Update(ctx context.Context, s entities.HomepageSettings) (entities.HomepageSettings, error)
}

type HomepageUseCase struct {
	repo interfaces.IHomepageRepository
}

var _ IHomepageUseCase = (*HomepageUseCase)(nil)

func NewHomepageUseCase(repo interfaces.IHomepageRepository) *HomepageUseCase {
	return &HomepageUseCase{repo: repo}
}

func (u *HomepageUseCase) Get(ctx context.Context) (entities.HomepageSettings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.HomepageSettings{}, err
	}
	if s.IsZero() {
		return entities.HomepageSettings{}, ErrHomepageNotFound
	}
	if s.HeroBadges == nil {
		s.HeroBadges = []string{}
	}
	return s, nil
}

func (u *HomepageUseCase) Update(ctx context.Context, s entities.HomepageSettings) (entities.HomepageSettings, error) {
	if err := normalizeHomepage(&s); err != nil {
		return entities.HomepageSettings{}, err
	}
	return u.repo.Update(ctx, s)
}

func normalizeHomepage(s *entities.HomepageSettings) error {
	s.HeroTitle = strings.TrimSpace(s.HeroTitle)
	s.HeroSubtitle = strings.TrimSpace(s.HeroSubtitle)
	s.CTAPrimaryText = strings.TrimSpace(s.CTAPrimaryText)
	s.CTASecondaryText = strings.TrimSpace(s.CTASecondaryText)
	s.StatDeliveryTime = strings.TrimSpace(s.StatDeliveryTime)
	if s.HeroTitle == "" {
		return ErrInvalidHomepage
	}
	if s.StatSatisfactionPercent < 0 || s.StatSatisfactionPercent > 100 {
		return ErrInvalidHomepage
	}

	badges := make([]string, 0, len(s.HeroBadges))
	for _, b := range s.HeroBadges {
		if b = strings.TrimSpace(b); b != "" {
			badges = append(badges, b)
		}
	}
	s.HeroBadges = badges
	return nil
}
