package response

import (
	"testing"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase"
)

func TestFromUnassignedQueue(t *testing.T) {
	shedWidth := 270.0
	queue := usecase.UnassignedQueue{
		Inquiries: []entities.Inquiry{
			{ID: "inq-1", CustomerID: "cust-1", CarportLength: 600, CarportWidth: 300, Status: entities.InquiryStatusUnderReview, ShedWidth: &shedWidth},
		},
		Salesmen: []entities.Salesman{
			{ID: "salesman-1", Name: "Anders", Email: "anders@example.com"},
		},
	}

	res := FromUnassignedQueue(queue)
	if len(res.Inquiries) != 1 || len(res.Salesmen) != 1 {
		t.Fatalf("unexpected sizes: %+v", res)
	}
	if res.Inquiries[0].ID != "inq-1" || res.Inquiries[0].Status != "under_review" {
		t.Fatalf("unexpected inquiry mapping: %+v", res.Inquiries[0])
	}
	if res.Inquiries[0].ShedWidth == nil || *res.Inquiries[0].ShedWidth != 270 {
		t.Fatalf("unexpected shed width mapping: %+v", res.Inquiries[0])
	}
	if res.Inquiries[0].ShedLength != nil {
		t.Fatalf("expected nil shed length, got %v", *res.Inquiries[0].ShedLength)
	}
	if res.Salesmen[0].Name != "Anders" {
		t.Fatalf("unexpected salesman mapping: %+v", res.Salesmen[0])
	}
}

func TestFromAssignedInquiry(t *testing.T) {
	res := FromAssignedInquiry(entities.Inquiry{
		ID: "inq-1", SalesmanID: "salesman-1", Status: entities.InquiryStatusAssigned,
	})
	if res.InquiryID != "inq-1" || res.SalesmanID != "salesman-1" || res.Status != "assigned" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
