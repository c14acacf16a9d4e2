package response

import (
	"strconv"
	"time"

	"carport_quotes/internal/usecase"
)

// NoneSentinel is rendered for optional fields the customer left empty, so the
// confirmation page can show "none" instead of a zero or a blank.
const NoneSentinel = "none"

// InquiryConfirmationResponse echoes the submitted values back to the customer
// together with the initial status. Shed dimensions and comments are strings so
// absent values render as the "none" sentinel rather than 0.
type InquiryConfirmationResponse struct {
	InquiryID        string    `json:"inquiry_id"`
	CustomerID       string    `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	Email            string    `json:"email"`
	Phone            int       `json:"phone"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Zipcode          int       `json:"zipcode"`
	CarportLength    float64   `json:"carport_length"`
	CarportWidth     float64   `json:"carport_width"`
	ShedLength       string    `json:"shed_length"`
	ShedWidth        string    `json:"shed_width"`
	Comments         string    `json:"comments"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submitted_at"`
	ConfirmationSent bool      `json:"confirmation_sent"`
}

func FromIntakeResult(res usecase.IntakeResult) InquiryConfirmationResponse {
	return InquiryConfirmationResponse{
		InquiryID:        res.Inquiry.ID,
		CustomerID:       res.Customer.ID,
		CustomerName:     res.Customer.Name,
		Email:            res.Customer.Email,
		Phone:            res.Customer.Phone,
		Address:          res.Customer.Address,
		City:             res.Customer.City,
		Zipcode:          res.Customer.Zipcode,
		CarportLength:    res.Inquiry.CarportLength,
		CarportWidth:     res.Inquiry.CarportWidth,
		ShedLength:       dimensionOrNone(res.Inquiry.ShedLength),
		ShedWidth:        dimensionOrNone(res.Inquiry.ShedWidth),
		Comments:         commentsOrNone(res.Inquiry.Comments),
		Status:           string(res.Inquiry.Status),
		SubmittedAt:      res.Inquiry.SubmittedAt,
		ConfirmationSent: res.ConfirmationSent,
	}
}

func dimensionOrNone(v *float64) string {
	if v == nil {
		return NoneSentinel
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func commentsOrNone(s string) string {
	if s == "" {
		return NoneSentinel
	}
	return s
}
