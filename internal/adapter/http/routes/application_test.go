package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laserwood/internal/config"
	"laserwood/internal/domain/entities"
	"laserwood/internal/infrastructure/auth"
	mock_interfaces "laserwood/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type storeMocks struct {
	materials        *mock_interfaces.MockIMaterialRepository
	rules            *mock_interfaces.MockIPricingRuleRepository
	catalogMaterials *mock_interfaces.MockIMaterialRepository
	catalogRules     *mock_interfaces.MockIPricingRuleRepository
	inquiries        *mock_interfaces.MockIInquiryRepository
}

func newWiredRouter(t *testing.T) (*gin.Engine, storeMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := storeMocks{
		materials:        mock_interfaces.NewMockIMaterialRepository(ctrl),
		rules:            mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		catalogMaterials: mock_interfaces.NewMockIMaterialRepository(ctrl),
		catalogRules:     mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		inquiries:        mock_interfaces.NewMockIInquiryRepository(ctrl),
	}
	st := stores{
		materials:        m.materials,
		rules:            m.rules,
		catalogMaterials: m.catalogMaterials,
		catalogRules:     m.catalogRules,
		works:            mock_interfaces.NewMockIWorkRepository(ctrl),
		reviews:          mock_interfaces.NewMockIReviewRepository(ctrl),
		faq:              mock_interfaces.NewMockIFAQRepository(ctrl),
		newsletter:       mock_interfaces.NewMockINewsletterRepository(ctrl),
		homepage:         mock_interfaces.NewMockIHomepageRepository(ctrl),
		inquiries:        m.inquiries,
	}
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	app := &application{
		tokens:   tokens,
		handlers: buildHandlers(&config.Config{}, st, services{tokens: tokens}, zap.NewNop()),
	}

	r := gin.New()
	getRoutes(r, app)
	return r, m
}

func plywood() (entities.Material, entities.PricingRule) {
	return entities.Material{ID: 7, Name: "Plywood 4mm", PricePerM2: 18000},
		entities.PricingRule{
			ID:                    3,
			MaterialID:            7,
			BasePriceM2:           20000,
			ModelDoubleMultiplier: 1.8,
			Model3DMarkupPercent:  50,
			LEDFixedPrice:         2500,
			MinimumOrder:          500,
		}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBuildHandlers_CatalogReads(t *testing.T) {
	t.Run("inquiry price snapshot bypasses the catalog cache", func(t *testing.T) {
		r, m := newWiredRouter(t)
		material, rule := plywood()

		m.materials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(material, nil)
		m.rules.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(rule, nil)
		m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				return i, nil
			},
		)

		w := postJSON(r, "/v1/inquiries", `{"customer_name":"Ana","customer_email":"ana@example.com",
			"width_mm":300,"height_mm":150,"material_id":7,"model_type":"single"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["calculated_price"] != float64(900) {
			t.Fatalf("unexpected price in %v", body)
		}
	})

	t.Run("public quote reads through the catalog cache", func(t *testing.T) {
		r, m := newWiredRouter(t)
		material, rule := plywood()

		m.catalogMaterials.EXPECT().GetByID(gomock.Any(), int64(7)).Return(material, nil)
		m.catalogRules.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(rule, nil)

		w := postJSON(r, "/v1/quotes", `{"width_mm":300,"height_mm":150,"material_id":7,"model_type":"single"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})
}
