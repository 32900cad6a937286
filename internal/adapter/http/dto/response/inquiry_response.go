package response

import (
	"time"

	"laserwood/internal/domain/entities"
)

// InquirySubmittedResponse is what the public form gets back. The price is
// the one stored, which is the server's.
type InquirySubmittedResponse struct {
	Success         bool    `json:"success"`
	InquiryID       string  `json:"inquiry_id"`
	CalculatedPrice float64 `json:"calculated_price"`
}

func FromSubmittedInquiry(i entities.Inquiry) InquirySubmittedResponse {
	return InquirySubmittedResponse{Success: true, InquiryID: i.ID, CalculatedPrice: i.CalculatedPrice}
}

type InquiryResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	MaterialID      int64     `json:"material_id"`
	MaterialName    string    `json:"material_name,omitempty"`
	WidthMM         float64   `json:"width_mm"`
	HeightMM        float64   `json:"height_mm"`
	ModelType       string    `json:"model_type"`
	HasLED          bool      `json:"has_led"`
	LEDType         string    `json:"led_type,omitempty"`
	CalculatedPrice float64   `json:"calculated_price"`
	Message         string    `json:"message,omitempty"`
	AttachmentURL   string    `json:"attachment_url,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:              i.ID,
		CustomerName:    i.CustomerName,
		CustomerEmail:   i.CustomerEmail,
		CustomerPhone:   i.CustomerPhone,
		MaterialID:      i.MaterialID,
		MaterialName:    i.MaterialName,
		WidthMM:         i.WidthMM,
		HeightMM:        i.HeightMM,
		ModelType:       string(i.ModelType),
		HasLED:          i.HasLED,
		LEDType:         string(i.LEDType),
		CalculatedPrice: i.CalculatedPrice,
		Message:         i.Message,
		AttachmentURL:   i.AttachmentURL,
		Status:          string(i.Status),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func FromInquiries(list []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInquiry(i))
	}
	return out
}
