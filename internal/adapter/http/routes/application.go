package routes

import (
	"context"
	"fmt"

	"laserwood/internal/adapter/http/handlers"
	"laserwood/internal/adapter/http/middleware"
	"laserwood/internal/adapter/persistence/cache"
	"laserwood/internal/adapter/persistence/repository"
	"laserwood/internal/config"
	"laserwood/internal/infrastructure/auth"
	infracache "laserwood/internal/infrastructure/cache"
	"laserwood/internal/infrastructure/database"
	"laserwood/internal/infrastructure/documents"
	"laserwood/internal/infrastructure/notify"
	"laserwood/internal/usecase"
	"laserwood/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type handlerSet struct {
	quotes    *handlers.QuoteHandler
	inquiries *handlers.InquiryHandler
	materials *handlers.MaterialHandler
	pricing   *handlers.PricingRuleHandler
	works     *handlers.WorkHandler
	reviews   *handlers.ReviewHandler
	faq       *handlers.FAQHandler
	site      *handlers.SiteHandler
	homepage  *handlers.HomepageHandler
	auth      *handlers.AuthHandler
}

type application struct {
	handlers handlerSet
	tokens   middleware.TokenParser
	closers  []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApplication connects the stores and builds every use case. Optional
// backends (Redis, Telegram) are skipped when not configured.
func newApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*application, error) {
	app := &application{}

	pool, err := database.ConnectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, pool.Close)

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, pool); err != nil {
			app.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	st := stores{
		materials:  repository.NewMaterialPostgresRepository(pool),
		rules:      repository.NewPricingRulePostgresRepository(pool),
		works:      repository.NewWorkPostgresRepository(pool),
		reviews:    repository.NewReviewPostgresRepository(pool),
		faq:        repository.NewFAQPostgresRepository(pool),
		newsletter: repository.NewNewsletterPostgresRepository(pool),
		homepage:   repository.NewHomepagePostgresRepository(pool),
	}
	st.catalogMaterials, st.catalogRules = st.materials, st.rules

	st.inquiries, err = newInquiryRepository(ctx, cfg, pool, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	var svc services
	if cfg.Redis.Addr != "" {
		rdb, err := infracache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, rdb.Close)

		st.catalogMaterials = cache.NewMaterialRepository(st.materials, rdb, cfg.Redis.CacheTTL, logger)
		st.catalogRules = cache.NewPricingRuleRepository(st.rules, rdb, cfg.Redis.CacheTTL, logger)
		svc.limiter = infracache.NewRateLimiter(rdb, cfg.InquiryRateLimit, cfg.InquiryRateWindow)
		logger.Info("redis catalog cache and inquiry rate limit enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.Warn("REDIS_ADDR not set, catalog cache and inquiry rate limit disabled")
	}

	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Studio.Currency, logger)
		if err != nil {
			// Inquiries must keep flowing without the notification channel.
			logger.Error("telegram notifier not configured", zap.Error(err))
		} else {
			svc.notifier = tg
		}
	}

	tokens := auth.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	app.tokens = tokens
	svc.tokens = tokens

	app.handlers = buildHandlers(cfg, st, svc, logger)
	return app, nil
}

// stores are the repositories behind the handlers. catalogMaterials and
// catalogRules may be cache-wrapped; materials and rules always read Postgres.
type stores struct {
	materials        interfaces.IMaterialRepository
	rules            interfaces.IPricingRuleRepository
	catalogMaterials interfaces.IMaterialRepository
	catalogRules     interfaces.IPricingRuleRepository
	works            interfaces.IWorkRepository
	reviews          interfaces.IReviewRepository
	faq              interfaces.IFAQRepository
	newsletter       interfaces.INewsletterRepository
	homepage         interfaces.IHomepageRepository
	inquiries        interfaces.IInquiryRepository
}

// services are the optional side channels. Nil notifier or limiter disables them.
type services struct {
	notifier interfaces.IInquiryNotifier
	limiter  interfaces.IRateLimiter
	tokens   interfaces.ITokenIssuer
}

func buildHandlers(cfg *config.Config, st stores, svc services, logger *zap.Logger) handlerSet {
	quoteUseCase := usecase.NewQuoteUseCase(st.catalogMaterials, st.catalogRules, documents.NewQuotePDF(cfg.Studio.Name, cfg.Studio.Currency), logger)
	// The stored price snapshot must see the current catalog, not a cached copy.
	inquiryUseCase := usecase.NewInquiryUseCase(usecase.InquiryDeps{
		Repo:      st.inquiries,
		Materials: st.materials,
		Rules:     st.rules,
		Notifier:  svc.notifier,
		Limiter:   svc.limiter,
		Exporter:  documents.NewInquiryExcel(),
	}, logger)

	return handlerSet{
		quotes:    handlers.NewQuoteHandler(quoteUseCase),
		inquiries: handlers.NewInquiryHandler(inquiryUseCase),
		materials: handlers.NewMaterialHandler(usecase.NewMaterialUseCase(st.catalogMaterials)),
		pricing:   handlers.NewPricingRuleHandler(usecase.NewPricingRuleUseCase(st.catalogRules, st.catalogMaterials)),
		works:     handlers.NewWorkHandler(usecase.NewWorkUseCase(st.works)),
		reviews:   handlers.NewReviewHandler(usecase.NewReviewUseCase(st.reviews)),
		faq:       handlers.NewFAQHandler(usecase.NewFAQUseCase(st.faq)),
		site:      handlers.NewSiteHandler(usecase.NewStatsUseCase(st.works, st.reviews), usecase.NewNewsletterUseCase(st.newsletter)),
		homepage:  handlers.NewHomepageHandler(usecase.NewHomepageUseCase(st.homepage)),
		auth:      handlers.NewAuthHandler(usecase.NewAuthUseCase(cfg.Admin.PasswordHash, svc.tokens, logger)),
	}
}

func newInquiryRepository(ctx context.Context, cfg *config.Config, db repository.DBTX, logger *zap.Logger) (interfaces.IInquiryRepository, error) {
	if cfg.InquiryStore != config.InquiryStoreDynamoDB {
		return repository.NewInquiryPostgresRepository(db), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	logger.Info("inquiries stored in dynamodb", zap.String("table", cfg.DynamoDB.InquiriesTable))
	return repository.NewInquiryDynamoRepository(ddb, cfg.DynamoDB.InquiriesTable), nil
}
