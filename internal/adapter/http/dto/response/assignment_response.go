package response

import (
	"time"

	"carport_quotes/internal/domain/entities"
)

type AssignmentResponse struct {
	InquiryID  string    `json:"inquiry_id"`
	SalesmanID string    `json:"salesman_id"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromAssignedInquiry(i entities.Inquiry) AssignmentResponse {
	return AssignmentResponse{
		InquiryID:  i.ID,
		SalesmanID: i.SalesmanID,
		Status:     string(i.Status),
		UpdatedAt:  i.UpdatedAt,
	}
}
