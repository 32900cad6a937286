package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// INewsletterRepository returns ErrDuplicate for an email that is already
// subscribed.
type INewsletterRepository interface {
	Subscribe(ctx context.Context, s entities.NewsletterSubscriber) error
}
