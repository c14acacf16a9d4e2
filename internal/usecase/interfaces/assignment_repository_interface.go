package interfaces

import (
	"context"

	"carport_quotes/internal/domain/entities"
)

// IAssignmentRepository abstracts DynamoDB persistence for Assignment facts.
// Facts are written once by the winner of the conditional inquiry update and are
// never updated or removed.
type IAssignmentRepository interface {
	Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error)
	GetByInquiryID(ctx context.Context, inquiryID string) (entities.Assignment, error)
}
