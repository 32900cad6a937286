package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laserwood/internal/adapter/http/handlers"
	"laserwood/internal/adapter/http/handlers/mocks"
	"laserwood/internal/domain/entities"
	"laserwood/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIInquiryUseCase, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	inquiries := mocks.NewMockIInquiryUseCase(ctrl)
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	app := &application{
		tokens: tokens,
		handlers: handlerSet{
			quotes:    handlers.NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl)),
			inquiries: handlers.NewInquiryHandler(inquiries),
			materials: handlers.NewMaterialHandler(mocks.NewMockIMaterialUseCase(ctrl)),
			pricing:   handlers.NewPricingRuleHandler(mocks.NewMockIPricingRuleUseCase(ctrl)),
			works:     handlers.NewWorkHandler(mocks.NewMockIWorkUseCase(ctrl)),
			reviews:   handlers.NewReviewHandler(mocks.NewMockIReviewUseCase(ctrl)),
			faq:       handlers.NewFAQHandler(mocks.NewMockIFAQUseCase(ctrl)),
			site:      handlers.NewSiteHandler(mocks.NewMockIStatsUseCase(ctrl), mocks.NewMockINewsletterUseCase(ctrl)),
			homepage:  handlers.NewHomepageHandler(mocks.NewMockIHomepageUseCase(ctrl)),
			auth:      handlers.NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl)),
		},
	}

	r := gin.New()
	getRoutes(r, app)
	return r, inquiries, tokens
}

func TestRoutes(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin requires token", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("homepage update is admin only", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/admin/homepage", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("admin with token", func(t *testing.T) {
		r, inquiries, tokens := newTestRouter(t)
		token, _, err := tokens.Issue("admin")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		inquiries.EXPECT().List(gomock.Any(), "").Return([]entities.Inquiry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
