package interfaces

import (
	"time"

	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
)

// QuoteDocument is everything printed on a customer offer.
type QuoteDocument struct {
	Number        string
	CreatedAt     time.Time
	Material      entities.Material
	Configuration pricing.Configuration
	Quote         pricing.Quote
}

// IQuoteRenderer renders an offer document (PDF).
type IQuoteRenderer interface {
	RenderQuote(doc QuoteDocument) ([]byte, error)
}

// IInquiryExporter renders the inquiry list as a spreadsheet.
type IInquiryExporter interface {
	ExportInquiries(list []entities.Inquiry) ([]byte, error)
}
