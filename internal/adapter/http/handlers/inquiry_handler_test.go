package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laserwood/internal/adapter/http/handlers/mocks"
	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const inquiryBody = `{"customer_name":"Ana","customer_email":"ana@example.com","width_mm":300,"height_mm":150,
"material_id":7,"model_type":"single","calculated_price":1}`

func TestInquiryHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IInquiryUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/inquiries", NewInquiryHandler(uc).Submit)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIInquiryUseCase(ctrl))

		if w := postJSON(r, "/v1/inquiries", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error names field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Inquiry{}, &usecase.ValidationError{Field: "customer_email"})

		w := postJSON(r, "/v1/inquiries", `{"customer_name":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "VALIDATION_ERROR" || !bytes.Contains([]byte(body.Message), []byte("customer_email")) {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	errCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"material", fmt.Errorf("load: %w", pricing.ErrMaterialNotFound), http.StatusNotFound, "MATERIAL_NOT_FOUND"},
		{"rate limit", usecase.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"persistence", fmt.Errorf("%w: %w", usecase.ErrPersistence, fmt.Errorf("timeout")), http.StatusBadGateway, "PERSISTENCE_ERROR"},
	}
	for _, tc := range errCases {
		t.Run("maps "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInquiryUseCase(ctrl)
			r := newRouter(uc)

			uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Inquiry{}, tc.err)

			w := postJSON(r, "/v1/inquiries", inquiryBody)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeError(t, w).Code; got != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, got)
			}
		})
	}

	t.Run("success returns server price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.SubmitInquiryInput) (entities.Inquiry, error) {
			if in.CustomerName != "Ana" || in.Configuration.MaterialID != 7 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.ClientKey == "" {
				t.Fatalf("expected client key to be set")
			}
			return entities.Inquiry{ID: "inq-1", CalculatedPrice: 900, Status: entities.InquiryStatusPending}, nil
		})

		w := postJSON(r, "/v1/inquiries", inquiryBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Success         bool    `json:"success"`
			InquiryID       string  `json:"inquiry_id"`
			CalculatedPrice float64 `json:"calculated_price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Success || body.InquiryID != "inq-1" || body.CalculatedPrice != 900 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInquiryHandler_Admin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IInquiryUseCase) *gin.Engine {
		h := NewInquiryHandler(uc)
		r := gin.New()
		r.GET("/v1/admin/inquiries", h.List)
		r.GET("/v1/admin/inquiries/export", h.Export)
		r.GET("/v1/admin/inquiries/:id", h.GetByID)
		r.PATCH("/v1/admin/inquiries/:id/status", h.UpdateStatus)
		return r
	}

	t.Run("list by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().List(gomock.Any(), "pending").Return([]entities.Inquiry{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries?status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Inquiry{}, usecase.ErrInquiryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update status missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIInquiryUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/inquiries/inq-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update status invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "inq-1", "lost").Return(entities.Inquiry{}, usecase.ErrInvalidInquiryStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/inquiries/inq-1/status", bytes.NewBufferString(`{"status":"lost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update status success keeps price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		now := time.Now().UTC()
		uc.EXPECT().UpdateStatus(gomock.Any(), "inq-1", "accepted").Return(entities.Inquiry{
			ID: "inq-1", CalculatedPrice: 900, Status: entities.InquiryStatusAccepted, UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/inquiries/inq-1/status", bytes.NewBufferString(`{"status":"accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status          string  `json:"status"`
			CalculatedPrice float64 `json:"calculated_price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Status != "accepted" || body.CalculatedPrice != 900 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Export(gomock.Any()).Return([]byte("PK"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
	})
}
