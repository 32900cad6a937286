package request

import (
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
)

// QuoteRequest is the configurator state sent for a live price.
type QuoteRequest struct {
	WidthMM    float64 `json:"width_mm"`
	HeightMM   float64 `json:"height_mm"`
	MaterialID int64   `json:"material_id"`
	ModelType  string  `json:"model_type"`
	HasLED     bool    `json:"has_led"`
	LEDType    string  `json:"led_type"`
}

// ToConfiguration defaults an omitted model type to single. Any other value
// is passed through for the engine to validate.
func (r QuoteRequest) ToConfiguration() pricing.Configuration {
	model := entities.ModelType(strings.TrimSpace(r.ModelType))
	if model == "" {
		model = entities.ModelSingle
	}
	return pricing.Configuration{
		WidthMM:    r.WidthMM,
		HeightMM:   r.HeightMM,
		MaterialID: r.MaterialID,
		ModelType:  model,
		HasLED:     r.HasLED,
		LEDType:    entities.LEDType(strings.TrimSpace(r.LEDType)),
	}
}
