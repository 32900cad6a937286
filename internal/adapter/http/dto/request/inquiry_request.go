package request

import (
	"laserwood/internal/usecase"
)

// InquiryRequest is the public inquiry form. It has no price field on
// purpose: a price sent by the client is ignored and recomputed.
type InquiryRequest struct {
	QuoteRequest
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Message       string `json:"message"`
	AttachmentURL string `json:"attachment_url"`
}

func (r InquiryRequest) ToInput(clientKey string) usecase.SubmitInquiryInput {
	return usecase.SubmitInquiryInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Configuration: r.ToConfiguration(),
		Message:       r.Message,
		AttachmentURL: r.AttachmentURL,
		ClientKey:     clientKey,
	}
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
