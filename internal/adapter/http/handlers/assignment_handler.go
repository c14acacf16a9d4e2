package handlers

import (
	"errors"
	"net/http"

	request "carport_quotes/internal/adapter/http/dto/request"
	response "carport_quotes/internal/adapter/http/dto/response"
	"carport_quotes/internal/usecase"
	"carport_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAssignForm = pkg.NewDomainErrorSimple("INVALID_ASSIGN_INPUT", "Invalid assignment form", http.StatusBadRequest)

// AssignmentHandler handles the sales-portal triage endpoints.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// ListUnassigned returns every inquiry with no salesman bound plus the salesman
// list for the claim dropdown.
func (h *AssignmentHandler) ListUnassigned(c *gin.Context) {
	queue, err := h.usecase.ListUnassigned(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnassignedQueue(queue))
}

// AssignSalesman binds a salesman to an inquiry; a lost race yields 409 and no
// change.
func (h *AssignmentHandler) AssignSalesman(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidAssignForm.HTTPStatus, errInvalidAssignForm.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.Assign(c.Request.Context(), payload.ResolveInquiryID(), payload.ResolveSalesmanID())
	if err != nil {
		appErr := mapAssignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssignedInquiry(inquiry))
}

func mapAssignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInvalidSalesmanID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSalesmanNotFound):
		return pkg.NewDomainErrorSimple("SALESMAN_NOT_FOUND", "Salesman not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInquiryAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Inquiry already has a salesman assigned", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
