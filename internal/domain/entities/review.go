package entities

import "time"

// Review is a customer testimonial. Only verified reviews are public.
type Review struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)
