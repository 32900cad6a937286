package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email")

type INewsletterUseCase interface {
	Subscribe(ctx context.Context, email string) error
}

type NewsletterUseCase struct {
	repo interfaces.INewsletterRepository
}

var _ INewsletterUseCase = (*NewsletterUseCase)(nil)

func NewNewsletterUseCase(repo interfaces.INewsletterRepository) *NewsletterUseCase {
	return &NewsletterUseCase{repo: repo}
}

// Subscribe is idempotent: an address that is already on the list counts as
// subscribed.
func (u *NewsletterUseCase) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidEmail
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	err := u.repo.Subscribe(ctx, entities.NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
		Active:       true,
	})
	if errors.Is(err, interfaces.ErrDuplicate) {
		return nil
	}
	return err
}
