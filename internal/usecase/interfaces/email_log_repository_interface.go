package interfaces

import (
	"context"

	"carport_quotes/internal/domain/entities"
)

// IEmailLogRepository abstracts the append-only confirmation audit log.
type IEmailLogRepository interface {
	Append(ctx context.Context, e entities.EmailLog) (entities.EmailLog, error)
	ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.EmailLog, error)
}
