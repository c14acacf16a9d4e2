package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"carport_quotes/internal/adapter/http/handlers/mocks"
	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func assignForm(inquiryID, salesmanID string) string {
	form := url.Values{}
	form.Set("inquiryId", inquiryID)
	form.Set("salesmanId", salesmanID)
	return form.Encode()
}

func TestAssignmentHandler_ListUnassigned(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.GET("/v1/inquiries/unassigned", h.ListUnassigned)

		uc.EXPECT().ListUnassigned(gomock.Any()).Return(usecase.UnassignedQueue{
			Inquiries: []entities.Inquiry{
				{ID: "inq-1", CustomerID: "cust-1", CarportLength: 600, CarportWidth: 300, Status: entities.InquiryStatusUnderReview, SubmittedAt: time.Now().UTC()},
			},
			Salesmen: []entities.Salesman{
				{ID: "salesman-1", Name: "Anders", Email: "anders@example.com"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiries/unassigned", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		inquiries, _ := body["inquiries"].([]any)
		salesmen, _ := body["salesmen"].([]any)
		if len(inquiries) != 1 || len(salesmen) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty queue renders empty arrays", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.GET("/v1/inquiries/unassigned", h.ListUnassigned)

		uc.EXPECT().ListUnassigned(gomock.Any()).Return(usecase.UnassignedQueue{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiries/unassigned", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["inquiries"] == nil || body["salesmen"] == nil {
			t.Fatalf("expected empty arrays, got: %s", w.Body.String())
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.GET("/v1/inquiries/unassigned", h.ListUnassigned)

		uc.EXPECT().ListUnassigned(gomock.Any()).Return(usecase.UnassignedQueue{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiries/unassigned", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAssignmentHandler_AssignSalesman(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries/assign", h.AssignSalesman)

		uc.EXPECT().Assign(gomock.Any(), "", "salesman-1").Return(entities.Inquiry{}, usecase.ErrInvalidInquiryID)

		w := postForm(r, "/v1/inquiries/assign", assignForm("  ", "salesman-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inquiry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries/assign", h.AssignSalesman)

		uc.EXPECT().Assign(gomock.Any(), "inq-missing", "salesman-1").Return(entities.Inquiry{}, usecase.ErrInquiryNotFound)

		w := postForm(r, "/v1/inquiries/assign", assignForm("inq-missing", "salesman-1"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INQUIRY_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("salesman not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries/assign", h.AssignSalesman)

		uc.EXPECT().Assign(gomock.Any(), "inq-1", "salesman-missing").Return(entities.Inquiry{}, usecase.ErrSalesmanNotFound)

		w := postForm(r, "/v1/inquiries/assign", assignForm("inq-1", "salesman-missing"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SALESMAN_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("lost race yields conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries/assign", h.AssignSalesman)

		uc.EXPECT().Assign(gomock.Any(), "inq-1", "salesman-2").Return(entities.Inquiry{}, usecase.ErrInquiryAlreadyAssigned)

		w := postForm(r, "/v1/inquiries/assign", assignForm("inq-1", "salesman-2"))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ALREADY_ASSIGNED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries/assign", h.AssignSalesman)

		uc.EXPECT().Assign(gomock.Any(), "inq-1", "salesman-1").Return(entities.Inquiry{
			ID: "inq-1", CustomerID: "cust-1", SalesmanID: "salesman-1", Status: entities.InquiryStatusAssigned,
		}, nil)

		w := postForm(r, "/v1/inquiries/assign", assignForm("inq-1", "salesman-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["inquiry_id"] != "inq-1" || body["salesman_id"] != "salesman-1" || body["status"] != "assigned" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapAssignError(t *testing.T) {
	if got := mapAssignError(usecase.ErrInvalidInquiryID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssignError(usecase.ErrInvalidSalesmanID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssignError(usecase.ErrInquiryNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAssignError(usecase.ErrSalesmanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAssignError(usecase.ErrInquiryAlreadyAssigned); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAssignError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
