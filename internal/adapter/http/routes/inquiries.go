package routes

import (
	"carport_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries = "/inquiries"
)

func addInquiryRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler, assignmentHandler *handlers.AssignmentHandler) {
	inquiries := rg.Group(PathInquiries)
	{
		inquiries.POST("", inquiryHandler.SubmitInquiry)
		inquiries.GET("/unassigned", assignmentHandler.ListUnassigned)
		inquiries.POST("/assign", assignmentHandler.AssignSalesman)
	}
}
