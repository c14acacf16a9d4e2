package interfaces

import (
	"context"

	"carport_quotes/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// The service must be able to:
//   - create an inquiry at intake
//   - list inquiries with no salesman bound (the triage queue)
//   - bind a salesman with a single atomic check-and-set, so that two concurrent
//     assignment attempts on the same inquiry resolve with exactly one winner

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	ListUnassigned(ctx context.Context) ([]entities.Inquiry, error)

	// AssignIfUnassigned sets salesmanID and the assigned status on the inquiry
	// only if no salesman is currently bound. It returns the updated inquiry and
	// true on success, or a zero inquiry and false when the conditional check
	// fails (already assigned, or row missing).
	AssignIfUnassigned(ctx context.Context, inquiryID, salesmanID string) (entities.Inquiry, bool, error)
}
