package entities

import "time"

// EmailLog records that a confirmation email was attempted for an
// inquiry/customer pair. Append-only audit trail: an entry is written whether or
// not the send succeeded, so operators can reconcile failed notifications later.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: inquiry_id-index (PK: inquiry_id)

type EmailLog struct {
	ID         string    `json:"id"`
	InquiryID  string    `json:"inquiry_id"`
	CustomerID string    `json:"customer_id"`
	Recipient  string    `json:"recipient"`
	Subject    string    `json:"subject"`
	Sent       bool      `json:"sent"`
	CreatedAt  time.Time `json:"created_at"`
}
