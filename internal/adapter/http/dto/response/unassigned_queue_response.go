package response

import (
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase"
)

type InquiryResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	CarportLength float64   `json:"carport_length"`
	CarportWidth  float64   `json:"carport_width"`
	ShedLength    *float64  `json:"shed_length,omitempty"`
	ShedWidth     *float64  `json:"shed_width,omitempty"`
	Comments      string    `json:"comments,omitempty"`
	Status        string    `json:"status"`
	SalesmanID    string    `json:"salesman_id,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type SalesmanResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UnassignedQueueResponse is the triage view: unassigned inquiries plus every
// salesman for the claim dropdown.
type UnassignedQueueResponse struct {
	Inquiries []InquiryResponse  `json:"inquiries"`
	Salesmen  []SalesmanResponse `json:"salesmen"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:            i.ID,
		CustomerID:    i.CustomerID,
		CarportLength: i.CarportLength,
		CarportWidth:  i.CarportWidth,
		ShedLength:    i.ShedLength,
		ShedWidth:     i.ShedWidth,
		Comments:      i.Comments,
		Status:        string(i.Status),
		SalesmanID:    i.SalesmanID,
		SubmittedAt:   i.SubmittedAt,
	}
}

func FromUnassignedQueue(q usecase.UnassignedQueue) UnassignedQueueResponse {
	inquiries := make([]InquiryResponse, 0, len(q.Inquiries))
	for _, i := range q.Inquiries {
		inquiries = append(inquiries, FromInquiry(i))
	}
	salesmen := make([]SalesmanResponse, 0, len(q.Salesmen))
	for _, s := range q.Salesmen {
		salesmen = append(salesmen, SalesmanResponse(s))
	}
	return UnassignedQueueResponse{Inquiries: inquiries, Salesmen: salesmen}
}
