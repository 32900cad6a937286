package entities

import "time"

type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Active       bool      `json:"active"`
}

// SiteStats feeds the storefront counters.
type SiteStats struct {
	CompletedProjects int64   `json:"completed_projects"`
	AvgRating         float64 `json:"avg_rating"`
	ReviewCount       int64   `json:"review_count"`
}
