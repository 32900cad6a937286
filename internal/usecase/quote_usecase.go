package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IQuoteUseCase exposes price quotes for the configurator and the admin
// pricing panel. It never persists anything.
type IQuoteUseCase interface {
	CalculateQuote(ctx context.Context, cfg pricing.Configuration) (QuoteResult, error)
	RenderQuotePDF(ctx context.Context, cfg pricing.Configuration) ([]byte, QuoteResult, error)
}

type QuoteUseCase struct {
	materials interfaces.IMaterialRepository
	rules     interfaces.IPricingRuleRepository
	renderer  interfaces.IQuoteRenderer
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	materials interfaces.IMaterialRepository,
	rules interfaces.IPricingRuleRepository,
	renderer interfaces.IQuoteRenderer,
	logger *zap.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		materials: materials,
		rules:     rules,
		renderer:  renderer,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *QuoteUseCase) CalculateQuote(ctx context.Context, cfg pricing.Configuration) (QuoteResult, error) {
	res, err := resolveQuote(ctx, u.materials, u.rules, cfg)
	if err != nil {
		u.logger.Debug("quote rejected",
			zap.Int64("material_id", cfg.MaterialID),
			zap.Error(err))
		return QuoteResult{}, err
	}

	u.logger.Debug("quote computed",
		zap.Int64("material_id", cfg.MaterialID),
		zap.String("model_type", string(cfg.ModelType)),
		zap.Bool("has_led", cfg.HasLED),
		zap.Float64("price", res.Quote.Price),
		zap.Bool("minimum_applied", res.Quote.Breakdown.MinimumApplied))
	return res, nil
}

func (u *QuoteUseCase) RenderQuotePDF(ctx context.Context, cfg pricing.Configuration) ([]byte, QuoteResult, error) {
	if u.renderer == nil {
		return nil, QuoteResult{}, errors.New("quote renderer not configured")
	}

	res, err := u.CalculateQuote(ctx, cfg)
	if err != nil {
		return nil, QuoteResult{}, err
	}

	doc := interfaces.QuoteDocument{
		Number:        "P-" + strings.ToUpper(uuid.NewString()[:8]),
		CreatedAt:     u.now(),
		Material:      res.Material,
		Configuration: cfg,
		Quote:         res.Quote,
	}
	body, err := u.renderer.RenderQuote(doc)
	if err != nil {
		u.logger.Error("quote document rendering failed",
			zap.String("number", doc.Number),
			zap.Error(err))
		return nil, QuoteResult{}, err
	}
	return body, res, nil
}
