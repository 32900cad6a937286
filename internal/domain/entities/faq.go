package entities

import "time"

type FAQ struct {
	ID            int64     `json:"id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	Category      string    `json:"category"`
	OrderPosition int       `json:"order_position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
