package entities

import "time"

// Customer is the contact record created for every submission.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The intake flow never deduplicates: each submission creates a fresh customer row.
// Immutable after creation within this workflow.

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     int       `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Zipcode   int       `json:"zipcode"`
	CreatedAt time.Time `json:"created_at"`
}
