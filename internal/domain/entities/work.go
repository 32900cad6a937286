package entities

import "time"

// Work is a gallery entry. MaterialName is denormalized at read time.
type Work struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MaterialID   *int64    `json:"material_id,omitempty"`
	MaterialName string    `json:"material_name,omitempty"`
	Dimensions   string    `json:"dimensions"`
	HasLED       bool      `json:"has_led"`
	Tags         []string  `json:"tags"`
	Images       []string  `json:"images"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
