package response

import (
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase"
)

type QuoteResponse struct {
	Price        float64           `json:"price"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	MaterialName string            `json:"material_name"`
}

func FromQuoteResult(r usecase.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Price:        r.Quote.Price,
		Breakdown:    r.Quote.Breakdown,
		MaterialName: r.Material.Name,
	}
}
