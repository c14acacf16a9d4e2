package request

import "strings"

// AssignRequest is the claim form posted from the unassigned-inquiries queue.
type AssignRequest struct {
	InquiryID  string `form:"inquiryId"`
	SalesmanID string `form:"salesmanId"`
}

func (r AssignRequest) ResolveInquiryID() string {
	return strings.TrimSpace(r.InquiryID)
}

func (r AssignRequest) ResolveSalesmanID() string {
	return strings.TrimSpace(r.SalesmanID)
}
