package interfaces

import (
	"context"

	"carport_quotes/internal/domain/entities"
)

// INotificationGateway abstracts the outbound confirmation channel (SMTP in
// production, mock mode locally).
//
// A send failure is non-fatal to the submission: the intake flow records the
// outcome in the email log and moves on, so implementations should return the
// error rather than retry.
type INotificationGateway interface {
	SendInquiryConfirmation(ctx context.Context, customer entities.Customer, inquiry entities.Inquiry) error
}
