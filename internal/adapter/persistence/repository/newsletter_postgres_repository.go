package repository

import (
	"context"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"
)

type NewsletterPostgresRepository struct {
	db DBTX
}

var _ interfaces.INewsletterRepository = (*NewsletterPostgresRepository)(nil)

func NewNewsletterPostgresRepository(db DBTX) *NewsletterPostgresRepository {
	return &NewsletterPostgresRepository{db: db}
}

func (r *NewsletterPostgresRepository) Subscribe(ctx context.Context, s entities.NewsletterSubscriber) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO newsletter_subscribers (id, email, subscribed_at, active) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Email, s.SubscribedAt, s.Active,
	)
	if isUniqueViolation(err) {
		return interfaces.ErrDuplicate
	}
	return err
}
