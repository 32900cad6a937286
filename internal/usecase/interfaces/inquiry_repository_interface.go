package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IInquiryRepository abstracts persistence for Inquiry.
//
// Implemented for Postgres and DynamoDB. The service must be able to:
//   - create an inquiry from a public submission
//   - list inquiries newest first, optionally by status
//   - change the status of one inquiry (the stored price is never updated)
type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) (entities.Inquiry, error)
}
