package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrPersistence          = errors.New("persistence error")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidInquiryID     = errors.New("invalid inquiry id")
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")
	ErrRateLimited          = errors.New("too many inquiries")
)

// ValidationError names the submission field that is missing or malformed.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "missing required field: " + e.Field
	}
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// SubmitInquiryInput is a public inquiry. There is deliberately no price
// field: the stored price is always recomputed here.
type SubmitInquiryInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Configuration pricing.Configuration
	Message       string
	AttachmentURL string
	// ClientKey identifies the submitter for rate limiting (client IP).
	ClientKey string
}

// IInquiryUseCase covers the inquiry lifecycle:
//   - Submit: public creation with a server-side price snapshot
//   - List / GetByID / Export: admin reads
//   - UpdateStatus: admin status transitions
type IInquiryUseCase interface {
	Submit(ctx context.Context, in SubmitInquiryInput) (entities.Inquiry, error)
	List(ctx context.Context, status string) ([]entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Inquiry, error)
	Export(ctx context.Context) ([]byte, error)
}

type InquiryUseCase struct {
	repo      interfaces.IInquiryRepository
	materials interfaces.IMaterialRepository
	rules     interfaces.IPricingRuleRepository
	notifier  interfaces.IInquiryNotifier
	limiter   interfaces.IRateLimiter
	exporter  interfaces.IInquiryExporter
	logger    *zap.Logger
	now       func() time.Time
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

type InquiryDeps struct {
	Repo      interfaces.IInquiryRepository
	Materials interfaces.IMaterialRepository
	Rules     interfaces.IPricingRuleRepository
	Notifier  interfaces.IInquiryNotifier
	Limiter   interfaces.IRateLimiter
	Exporter  interfaces.IInquiryExporter
}

func NewInquiryUseCase(deps InquiryDeps, logger *zap.Logger) *InquiryUseCase {
	return &InquiryUseCase{
		repo:      deps.Repo,
		materials: deps.Materials,
		rules:     deps.Rules,
		notifier:  deps.Notifier,
		limiter:   deps.Limiter,
		exporter:  deps.Exporter,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *InquiryUseCase) Submit(ctx context.Context, in SubmitInquiryInput) (entities.Inquiry, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if err := validateSubmission(in); err != nil {
		return entities.Inquiry{}, err
	}
	if in.Configuration.ModelType == "" {
		in.Configuration.ModelType = entities.ModelSingle
	}

	if u.limiter != nil && in.ClientKey != "" {
		allowed, err := u.limiter.Allow(ctx, "inquiry:"+in.ClientKey)
		if err != nil {
			// the limiter is advisory; a cache outage must not block customers
			u.logger.Warn("inquiry rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			u.logger.Info("inquiry rate limited", zap.String("client", in.ClientKey))
			return entities.Inquiry{}, ErrRateLimited
		}
	}

	res, err := resolveQuote(ctx, u.materials, u.rules, in.Configuration)
	if err != nil {
		return entities.Inquiry{}, err
	}

	cfg := in.Configuration
	ledType := cfg.LEDType
	if !cfg.HasLED {
		ledType = ""
	}
	now := u.now().UTC()
	inquiry := entities.Inquiry{
		ID:              uuid.NewString(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		MaterialID:      res.Material.ID,
		MaterialName:    res.Material.Name,
		WidthMM:         cfg.WidthMM,
		HeightMM:        cfg.HeightMM,
		ModelType:       cfg.ModelType,
		HasLED:          cfg.HasLED,
		LEDType:         ledType,
		CalculatedPrice: res.Quote.Price,
		Message:         strings.TrimSpace(in.Message),
		AttachmentURL:   strings.TrimSpace(in.AttachmentURL),
		Status:          entities.InquiryStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, inquiry)
	if err != nil {
		u.logger.Error("inquiry insert failed",
			zap.String("inquiry_id", inquiry.ID),
			zap.Error(err))
		return entities.Inquiry{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if created.MaterialName == "" {
		created.MaterialName = res.Material.Name
	}

	u.logger.Info("inquiry submitted",
		zap.String("inquiry_id", created.ID),
		zap.Int64("material_id", created.MaterialID),
		zap.Float64("calculated_price", created.CalculatedPrice))

	if u.notifier != nil {
		if err := u.notifier.NotifyNewInquiry(ctx, created); err != nil {
			u.logger.Warn("inquiry notification failed",
				zap.String("inquiry_id", created.ID),
				zap.Error(err))
		}
	}
	return created, nil
}

func validateSubmission(in SubmitInquiryInput) error {
	switch {
	case in.CustomerName == "":
		return &ValidationError{Field: "customer_name"}
	case in.CustomerEmail == "":
		return &ValidationError{Field: "customer_email"}
	}
	if err := requireConfiguration(in.Configuration); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
		return &ValidationError{Field: "customer_email", Reason: "not an email address"}
	}
	return nil
}

func (u *InquiryUseCase) List(ctx context.Context, status string) ([]entities.Inquiry, error) {
	st := entities.InquiryStatus(strings.TrimSpace(status))
	if st != "" && !st.Valid() {
		return nil, ErrInvalidInquiryStatus
	}
	return u.repo.List(ctx, st)
}

func (u *InquiryUseCase) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if i.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return i, nil
}

func (u *InquiryUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}
	st := entities.InquiryStatus(strings.TrimSpace(status))
	if !st.Valid() {
		return entities.Inquiry{}, ErrInvalidInquiryStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if updated.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}

	u.logger.Info("inquiry status changed",
		zap.String("inquiry_id", id),
		zap.String("status", string(st)))
	return updated, nil
}

func (u *InquiryUseCase) Export(ctx context.Context) ([]byte, error) {
	if u.exporter == nil {
		return nil, errors.New("inquiry exporter not configured")
	}

	list, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return u.exporter.ExportInquiries(list)
}
