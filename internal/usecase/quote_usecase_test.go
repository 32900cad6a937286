package usecase

import (
	"context"
	"errors"
	"testing"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"
	mock_interfaces "laserwood/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func plywood() entities.Material {
	return entities.Material{ID: 7, Name: "Plywood 4mm", PricePerM2: 18000}
}

func plywoodRule() entities.PricingRule {
	return entities.PricingRule{
		ID:                    3,
		MaterialID:            7,
		BasePriceM2:           20000,
		ModelDoubleMultiplier: 1.8,
		Model3DMarkupPercent:  50,
		LEDFixedPrice:         2500,
		MinimumOrder:          500,
	}
}

func signConfig() pricing.Configuration {
	return pricing.Configuration{WidthMM: 300, HeightMM: 150, MaterialID: 7, ModelType: entities.ModelSingle}
}

func TestQuoteUseCase_CalculateQuote(t *testing.T) {
	t.Run("invalid dimension does not touch storage", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zap.NewNop())
		cfg := signConfig()
		cfg.WidthMM = -1

		_, err := uc.CalculateQuote(context.Background(), cfg)
		if !errors.Is(err, pricing.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	missing := []struct {
		name   string
		mutate func(*pricing.Configuration)
		field  string
	}{
		{"width", func(c *pricing.Configuration) { c.WidthMM = 0 }, "width_mm"},
		{"height", func(c *pricing.Configuration) { c.HeightMM = 0 }, "height_mm"},
		{"material", func(c *pricing.Configuration) { c.MaterialID = 0 }, "material_id"},
	}
	for _, tc := range missing {
		t.Run("missing "+tc.name, func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil, nil, zap.NewNop())
			cfg := signConfig()
			tc.mutate(&cfg)

			_, err := uc.CalculateQuote(context.Background(), cfg)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	t.Run("unknown model type", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zap.NewNop())
		cfg := signConfig()
		cfg.ModelType = "neon"

		_, err := uc.CalculateQuote(context.Background(), cfg)
		if !errors.Is(err, pricing.ErrInvalidModelType) {
			t.Fatalf("expected ErrInvalidModelType, got %v", err)
		}
	})

	t.Run("material not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
		uc := NewQuoteUseCase(materials, rules, nil, zap.NewNop())

		materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Material{}, nil)

		_, err := uc.CalculateQuote(context.Background(), signConfig())
		if !errors.Is(err, pricing.ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("pricing rule not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
		uc := NewQuoteUseCase(materials, rules, nil, zap.NewNop())

		materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(plywood(), nil)
		rules.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(entities.PricingRule{}, nil)

		_, err := uc.CalculateQuote(context.Background(), signConfig())
		if !errors.Is(err, pricing.ErrPricingRuleNotFound) {
			t.Fatalf("expected ErrPricingRuleNotFound, got %v", err)
		}
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
		uc := NewQuoteUseCase(materials, rules, nil, zap.NewNop())

		dbErr := errors.New("db")
		materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Material{}, dbErr)

		_, err := uc.CalculateQuote(context.Background(), signConfig())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
		uc := NewQuoteUseCase(materials, rules, nil, zap.NewNop())

		materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(plywood(), nil)
		rules.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(plywoodRule(), nil)

		res, err := uc.CalculateQuote(context.Background(), signConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.Price != 900 {
			t.Fatalf("expected 900, got %v", res.Quote.Price)
		}
		if res.Material.Name != "Plywood 4mm" {
			t.Fatalf("expected material name, got %q", res.Material.Name)
		}
	})
}

func TestQuoteUseCase_RenderQuotePDF(t *testing.T) {
	t.Run("renders computed quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteUseCase(materials, rules, renderer, zap.NewNop())

		materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(plywood(), nil)
		rules.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(plywoodRule(), nil)
		renderer.EXPECT().RenderQuote(gomock.AssignableToTypeOf(interfaces.QuoteDocument{})).DoAndReturn(
			func(doc interfaces.QuoteDocument) ([]byte, error) {
				if doc.Number == "" || doc.CreatedAt.IsZero() {
					t.Fatalf("expected number and date, got %+v", doc)
				}
				if doc.Quote.Price != 900 || doc.Material.ID != 7 {
					t.Fatalf("unexpected document: %+v", doc)
				}
				return []byte("%PDF-1.3"), nil
			},
		)

		body, res, err := uc.RenderQuotePDF(context.Background(), signConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != "%PDF-1.3" || res.Quote.Price != 900 {
			t.Fatalf("unexpected result: %q %+v", body, res)
		}
	})

	t.Run("pricing error skips rendering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteUseCase(nil, nil, renderer, zap.NewNop())
		cfg := signConfig()
		cfg.HeightMM = -5

		_, _, err := uc.RenderQuotePDF(context.Background(), cfg)
		if !errors.Is(err, pricing.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})
}
