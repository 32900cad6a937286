package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laserwood/internal/adapter/http/handlers/mocks"
	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase"
	mock_interfaces "laserwood/internal/usecase/interfaces/mocks"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestQuoteHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.Calculate)

		if w := postJSON(r, "/v1/quotes", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"dimension", pricing.ErrInvalidDimension, http.StatusBadRequest, "INVALID_DIMENSION"},
		{"model type", pricing.ErrInvalidModelType, http.StatusBadRequest, "INVALID_MODEL_TYPE"},
		{"led type", pricing.ErrInvalidLEDType, http.StatusBadRequest, "INVALID_LED_TYPE"},
		{"material", pricing.ErrMaterialNotFound, http.StatusNotFound, "MATERIAL_NOT_FOUND"},
		{"rule", pricing.ErrPricingRuleNotFound, http.StatusNotFound, "PRICING_RULE_NOT_FOUND"},
		{"price", pricing.ErrInvalidPrice, http.StatusUnprocessableEntity, "INVALID_PRICE"},
		{"store", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errCases {
		t.Run("maps "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			r.POST("/v1/quotes", h.Calculate)

			uc.EXPECT().CalculateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, tc.err)

			w := postJSON(r, "/v1/quotes", `{"width_mm":300,"height_mm":150,"material_id":7}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeError(t, w).Code; got != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, got)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.Calculate)

		want := pricing.Configuration{WidthMM: 300, HeightMM: 150, MaterialID: 7, ModelType: entities.ModelSingle}
		uc.EXPECT().CalculateQuote(gomock.Any(), want).Return(usecase.QuoteResult{
			Quote:    pricing.Quote{Price: 900, Breakdown: pricing.Breakdown{AreaM2: 0.045, FinalPrice: 900}},
			Material: entities.Material{ID: 7, Name: "Plywood"},
		}, nil)

		w := postJSON(r, "/v1/quotes", `{"width_mm":300,"height_mm":150,"material_id":7}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Price        float64 `json:"price"`
			MaterialName string  `json:"material_name"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Price != 900 || body.MaterialName != "Plywood" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/pdf", h.PDF)

	uc.EXPECT().RenderQuotePDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.3"), usecase.QuoteResult{}, nil)

	w := postJSON(r, "/v1/quotes/pdf", `{"width_mm":300,"height_mm":150,"material_id":7,"model_type":"double"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="ponuda-300x150.pdf"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestQuoteHandler_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		path  string
		body  string
		field string
	}{
		{"quote without material", "/v1/quotes", `{"width_mm":300,"height_mm":150}`, "material_id"},
		{"quote without width", "/v1/quotes", `{"height_mm":150,"material_id":7}`, "width_mm"},
		{"quote without height", "/v1/quotes", `{"width_mm":300,"material_id":7}`, "height_mm"},
		{"pdf without material", "/v1/quotes/pdf", `{"width_mm":300,"height_mm":150}`, "material_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// no storage calls are expected for an incomplete configuration
			materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
			rules := mock_interfaces.NewMockIPricingRuleRepository(ctrl)
			renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
			h := NewQuoteHandler(usecase.NewQuoteUseCase(materials, rules, renderer, zap.NewNop()))

			r := gin.New()
			r.POST("/v1/quotes", h.Calculate)
			r.POST("/v1/quotes/pdf", h.PDF)

			w := postJSON(r, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			body := decodeError(t, w)
			if body.Code != "VALIDATION_ERROR" || !strings.Contains(body.Message, tc.field) {
				t.Fatalf("expected VALIDATION_ERROR naming %s, got %+v", tc.field, body)
			}
		})
	}
}
