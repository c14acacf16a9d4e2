package handlers

import (
	"net/http"

	request "carport_quotes/internal/adapter/http/dto/request"
	response "carport_quotes/internal/adapter/http/dto/response"
	"carport_quotes/internal/usecase"
	"carport_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInquiryForm = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry form", http.StatusBadRequest)

// InquiryHandler handles HTTP requests for quote-request submission.

type InquiryHandler struct {
	usecase usecase.IInquiryIntakeUseCase
}

func NewInquiryHandler(uc usecase.IInquiryIntakeUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// SubmitInquiry accepts the quote-request form and returns the confirmation
// payload. Validation failures carry the field-specific message; internal
// failures only tell the submitter the inquiry was not saved.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidInquiryForm.HTTPStatus, errInvalidInquiryForm.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToSubmission())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIntakeResult(res))
}

func mapIntakeError(err error) *pkg.AppError {
	if usecase.IsValidationError(err) {
		return pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", err.Error(), http.StatusBadRequest)
	}
	// The cause stays in logs for operators; the submitter only learns the
	// inquiry was not saved.
	return pkg.NewDomainError("INTERNAL_ERROR", "The inquiry was not saved", err, http.StatusInternalServerError)
}
