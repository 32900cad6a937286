package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"laserwood/internal/domain/entities"
	mock_interfaces "laserwood/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHomepageUseCase_Get(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHomepageRepository(ctrl)
		uc := NewHomepageUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.HomepageSettings{}, nil)

		_, err := uc.Get(context.Background())
		if !errors.Is(err, ErrHomepageNotFound) {
			t.Fatalf("expected ErrHomepageNotFound, got %v", err)
		}
	})

	t.Run("nil badges become empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHomepageRepository(ctrl)
		uc := NewHomepageUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.HomepageSettings{HeroTitle: "Signs", UpdatedAt: time.Now()}, nil)

		s, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.HeroBadges == nil {
			t.Fatalf("expected empty badges slice")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHomepageRepository(ctrl)
		uc := NewHomepageUseCase(repo)

		dbErr := errors.New("db")
		repo.EXPECT().Get(gomock.Any()).Return(entities.HomepageSettings{}, dbErr)

		if _, err := uc.Get(context.Background()); !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestHomepageUseCase_Update(t *testing.T) {
	invalid := []struct {
		name string
		s    entities.HomepageSettings
	}{
		{"blank title", entities.HomepageSettings{HeroTitle: "   "}},
		{"negative satisfaction", entities.HomepageSettings{HeroTitle: "Signs", StatSatisfactionPercent: -1}},
		{"satisfaction over 100", entities.HomepageSettings{HeroTitle: "Signs", StatSatisfactionPercent: 100.5}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewHomepageUseCase(nil)
			if _, err := uc.Update(context.Background(), tc.s); !errors.Is(err, ErrInvalidHomepage) {
				t.Fatalf("expected ErrInvalidHomepage, got %v", err)
			}
		})
	}

	t.Run("trims fields and drops blank badges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHomepageRepository(ctrl)
		uc := NewHomepageUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.HomepageSettings) (entities.HomepageSettings, error) {
				if s.HeroTitle != "Signs" || s.StatDeliveryTime != "3 days" {
					t.Fatalf("expected trimmed fields, got %+v", s)
				}
				if len(s.HeroBadges) != 2 || s.HeroBadges[1] != "LED" {
					t.Fatalf("unexpected badges: %#v", s.HeroBadges)
				}
				s.UpdatedAt = time.Now()
				return s, nil
			},
		)

		s, err := uc.Update(context.Background(), entities.HomepageSettings{
			HeroTitle:               "  Signs ",
			HeroBadges:              []string{"Fast", " ", " LED"},
			StatDeliveryTime:        " 3 days",
			StatSatisfactionPercent: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UpdatedAt.IsZero() {
			t.Fatalf("expected stored settings")
		}
	})
}
