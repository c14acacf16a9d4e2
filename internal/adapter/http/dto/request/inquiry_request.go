package request

import "carport_quotes/internal/usecase"

// InquiryRequest is the quote-request form as submitted by the website. Every
// field is bound as a raw string; parsing and validation (including the
// "<field> must be a number" messages) belong to the intake use case so the
// checks run in their mandated order.
type InquiryRequest struct {
	Name          string `form:"name"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Address       string `form:"address"`
	City          string `form:"city"`
	Zipcode       string `form:"zipcode"`
	CarportLength string `form:"carportLength"`
	CarportWidth  string `form:"carportWidth"`
	ShedLength    string `form:"shedLength"`
	ShedWidth     string `form:"shedWidth"`
	Comments      string `form:"comments"`
}

func (r InquiryRequest) ToSubmission() usecase.InquirySubmission {
	return usecase.InquirySubmission{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Zipcode:       r.Zipcode,
		CarportLength: r.CarportLength,
		CarportWidth:  r.CarportWidth,
		ShedLength:    r.ShedLength,
		ShedWidth:     r.ShedWidth,
		Comments:      r.Comments,
	}
}
