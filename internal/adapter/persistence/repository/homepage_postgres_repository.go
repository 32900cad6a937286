package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const homepageColumns = `hero_title, hero_subtitle, hero_badges, cta_primary_text, cta_secondary_text,
	stat_delivery_time, stat_satisfaction_percent, updated_at`

type HomepagePostgresRepository struct {
	db DBTX
}

var _ interfaces.IHomepageRepository = (*HomepagePostgresRepository)(nil)

func NewHomepagePostgresRepository(db DBTX) *HomepagePostgresRepository {
	return &HomepagePostgresRepository{db: db}
}

func (r *HomepagePostgresRepository) Get(ctx context.Context) (entities.HomepageSettings, error) {
	s, err := scanHomepage(r.db.QueryRow(ctx, `SELECT `+homepageColumns+` FROM homepage_settings WHERE id = 1`))
	if isNoRows(err) {
		return entities.HomepageSettings{}, nil
	}
	if err != nil {
		return entities.HomepageSettings{}, fmt.Errorf("get homepage settings: %w", err)
	}
	return s, nil
}

// Update upserts row 1 so a database created without the seed still works.
func (r *HomepagePostgresRepository) Update(ctx context.Context, s entities.HomepageSettings) (entities.HomepageSettings, error) {
	const q = `
		INSERT INTO homepage_settings (id, hero_title, hero_subtitle, hero_badges, cta_primary_text,
			cta_secondary_text, stat_delivery_time, stat_satisfaction_percent, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			hero_badges = EXCLUDED.hero_badges,
			cta_primary_text = EXCLUDED.cta_primary_text,
			cta_secondary_text = EXCLUDED.cta_secondary_text,
			stat_delivery_time = EXCLUDED.stat_delivery_time,
			stat_satisfaction_percent = EXCLUDED.stat_satisfaction_percent,
			updated_at = now()
		RETURNING ` + homepageColumns

	updated, err := scanHomepage(r.db.QueryRow(ctx, q,
		s.HeroTitle, s.HeroSubtitle, nonNilStrings(s.HeroBadges), s.CTAPrimaryText,
		s.CTASecondaryText, s.StatDeliveryTime, s.StatSatisfactionPercent,
	))
	if err != nil {
		return entities.HomepageSettings{}, fmt.Errorf("update homepage settings: %w", err)
	}
	return updated, nil
}

func scanHomepage(row pgx.Row) (entities.HomepageSettings, error) {
	var s entities.HomepageSettings
	err := row.Scan(&s.HeroTitle, &s.HeroSubtitle, &s.HeroBadges, &s.CTAPrimaryText,
		&s.CTASecondaryText, &s.StatDeliveryTime, &s.StatSatisfactionPercent, &s.UpdatedAt)
	return s, err
}
