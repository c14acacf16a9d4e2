package entities

import "time"

// InquiryStatus represents the lifecycle of a carport quote request.
//
// Domain notes:
//   - under_review is the only status the intake flow ever assigns.
//   - Transitions only move forward; no operation reverts an inquiry.
//   - quoted/closed are reached by follow-up sales tooling, not by this service's
//     HTTP surface.

type InquiryStatus string

const (
	InquiryStatusUnderReview InquiryStatus = "under_review"
	InquiryStatusAssigned    InquiryStatus = "assigned"
	InquiryStatusQuoted      InquiryStatus = "quoted"
	InquiryStatusClosed      InquiryStatus = "closed"
)

var statusRank = map[InquiryStatus]int{
	InquiryStatusUnderReview: 0,
	InquiryStatusAssigned:    1,
	InquiryStatusQuoted:      2,
	InquiryStatusClosed:      3,
}

// IsValid reports whether s is one of the closed set of statuses.
func (s InquiryStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// transition. Staying on the same status is not a transition.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Inquiry is a customer's carport quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - salesman_id is stored only once a salesman is bound; the attribute's absence
//     is what the conditional assignment update checks.
//
// Shed dimensions are optional and independent: either may be present without the
// other (a nil pointer means "no shed requested", never zero).

type Inquiry struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CarportLength float64       `json:"carport_length"`
	CarportWidth  float64       `json:"carport_width"`
	ShedLength    *float64      `json:"shed_length,omitempty"`
	ShedWidth     *float64      `json:"shed_width,omitempty"`
	Comments      string        `json:"comments,omitempty"`
	Status        InquiryStatus `json:"status"`
	SalesmanID    string        `json:"salesman_id,omitempty"`
	SubmittedAt   time.Time     `json:"submitted_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Assigned reports whether a salesman is already bound to the inquiry.
func (i Inquiry) Assigned() bool {
	return i.SalesmanID != ""
}
