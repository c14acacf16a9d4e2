package entities

import "time"

// Assignment is the one-time binding of a salesman to an inquiry.
//
// Storage model (DynamoDB):
//   - PK: inquiry_id
//
// Using the inquiry id as the partition key plus a conditional put guarantees at
// most one assignment fact per inquiry, ever. Facts are never updated or removed.

type Assignment struct {
	InquiryID  string    `json:"inquiry_id"`
	SalesmanID string    `json:"salesman_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
