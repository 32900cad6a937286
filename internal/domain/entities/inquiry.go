package entities

import "time"

// InquiryStatus represents the lifecycle of a customer inquiry.
//
// An inquiry is created as pending by the public submission flow; every later
// change is a status transition made by an operator.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusAccepted   InquiryStatus = "accepted"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusShipped    InquiryStatus = "shipped"
	InquiryStatusCompleted  InquiryStatus = "completed"
	InquiryStatusRejected   InquiryStatus = "rejected"
)

var inquiryStatuses = map[InquiryStatus]struct{}{
	InquiryStatusPending:    {},
	InquiryStatusAccepted:   {},
	InquiryStatusInProgress: {},
	InquiryStatusShipped:    {},
	InquiryStatusCompleted:  {},
	InquiryStatusRejected:   {},
}

func (s InquiryStatus) Valid() bool {
	_, ok := inquiryStatuses[s]
	return ok
}

// ModelType is the construction variant of a sign.
type ModelType string

const (
	ModelSingle    ModelType = "single"
	ModelDouble    ModelType = "double"
	Model3DLetters ModelType = "3d_letters"
)

func (m ModelType) Valid() bool {
	switch m {
	case ModelSingle, ModelDouble, Model3DLetters:
		return true
	}
	return false
}

// LEDType is the LED power supply. Only meaningful when HasLED is set.
type LEDType string

const (
	LED5V   LEDType = "5V"
	LED220V LEDType = "220V"
)

func (l LEDType) Valid() bool {
	return l == LED5V || l == LED220V
}

// Inquiry is a customer request persisted at submission time.
//
// Storage model:
//   - Postgres table inquiries, PK id (uuid)
//   - or DynamoDB table inquiries, PK id (INQUIRY_STORE=dynamodb)
//
// CalculatedPrice is a point-in-time snapshot computed by the server when
// the inquiry was created. It is never re-priced afterwards.
type Inquiry struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	MaterialID      int64         `json:"material_id"`
	MaterialName    string        `json:"material_name,omitempty"`
	WidthMM         float64       `json:"width_mm"`
	HeightMM        float64       `json:"height_mm"`
	ModelType       ModelType     `json:"model_type"`
	HasLED          bool          `json:"has_led"`
	LEDType         LEDType       `json:"led_type,omitempty"`
	CalculatedPrice float64       `json:"calculated_price"`
	Message         string        `json:"message,omitempty"`
	AttachmentURL   string        `json:"attachment_url,omitempty"`
	Status          InquiryStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
