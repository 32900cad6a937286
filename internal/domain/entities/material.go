package entities

import "time"

// Material is an engraving substrate offered in the configurator.
//
// PricePerM2 is the list price per square meter. The pricing engine always
// reads the current value; there is no price history.
type Material struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ThicknessOptions []float64 `json:"thickness_options"`
	IndoorOutdoor    string    `json:"indoor_outdoor"`
	MaintenanceInfo  string    `json:"maintenance_info"`
	PricePerM2       float64   `json:"price_per_m2"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
