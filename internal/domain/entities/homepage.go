package entities

import "time"

// HomepageSettings is the editable landing page copy. Exactly one row exists.
type HomepageSettings struct {
	HeroTitle               string    `json:"hero_title"`
	HeroSubtitle            string    `json:"hero_subtitle"`
	HeroBadges              []string  `json:"hero_badges"`
	CTAPrimaryText          string    `json:"cta_primary_text"`
	CTASecondaryText        string    `json:"cta_secondary_text"`
	StatDeliveryTime        string    `json:"stat_delivery_time"`
	StatSatisfactionPercent float64   `json:"stat_satisfaction_percent"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (h HomepageSettings) IsZero() bool {
	return h.UpdatedAt.IsZero() && h.HeroTitle == ""
}
