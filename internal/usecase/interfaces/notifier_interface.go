package interfaces

import (
	"context"

	"laserwood/internal/domain/entities"
)

// IInquiryNotifier tells the studio about a freshly stored inquiry
// (Telegram chat in production).
type IInquiryNotifier interface {
	NotifyNewInquiry(ctx context.Context, i entities.Inquiry) error
}
