package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"laserwood/internal/adapter/http/handlers/mocks"
	"laserwood/internal/domain/entities"
	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMaterialHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IMaterialUseCase) *gin.Engine {
		h := NewMaterialHandler(uc)
		r := gin.New()
		r.GET("/materials", h.List)
		r.POST("/materials", h.Create)
		r.PUT("/materials/:id", h.Update)
		r.DELETE("/materials/:id", h.Delete)
		return r
	}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Material{{ID: 1, Name: "Hrast"}}, nil)

		if w := doRequest(newRouter(uc), http.MethodGet, "/materials", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIMaterialUseCase(ctrl))

		if w := doRequest(r, http.MethodPost, "/materials", `{"price_per_m2":100}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Material) (entities.Material, error) {
			if m.Name != "Hrast" || m.PricePerM2 != 22000 {
				t.Fatalf("unexpected material: %+v", m)
			}
			m.ID = 3
			return m, nil
		})

		w := doRequest(newRouter(uc), http.MethodPost, "/materials", `{"name":"Hrast","price_per_m2":22000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIMaterialUseCase(ctrl))

		if w := doRequest(r, http.MethodPut, "/materials/abc", `{"name":"x"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(9)).Return(pricing.ErrMaterialNotFound)

		if w := doRequest(newRouter(uc), http.MethodDelete, "/materials/9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)

		if w := doRequest(newRouter(uc), http.MethodDelete, "/materials/9", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPricingRuleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IPricingRuleUseCase) *gin.Engine {
		h := NewPricingRuleHandler(uc)
		r := gin.New()
		r.POST("/pricing", h.Create)
		r.PUT("/pricing/:id", h.Update)
		r.GET("/pricing/material/:id", h.GetByMaterialID)
		return r
	}

	t.Run("create duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PricingRule{}, usecase.ErrPricingRuleAlreadyExists)

		w := doRequest(newRouter(uc), http.MethodPost, "/pricing", `{"material_id":7,"model_double_multiplier":1.8}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update invalid rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PricingRule{}, pricing.ErrInvalidPricingRule)

		w := doRequest(newRouter(uc), http.MethodPut, "/pricing/2", `{"model_double_multiplier":0.5}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "INVALID_PRICING_RULE" {
			t.Fatalf("unexpected code %s", got)
		}
	})

	t.Run("get by material missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		uc.EXPECT().GetByMaterialID(gomock.Any(), int64(7)).Return(entities.PricingRule{}, pricing.ErrPricingRuleNotFound)

		if w := doRequest(newRouter(uc), http.MethodGet, "/pricing/material/7", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkUseCase(ctrl)
	h := NewWorkHandler(uc)

	r := gin.New()
	r.GET("/works", h.List)

	uc.EXPECT().List(gomock.Any(), 6).Return([]entities.Work{{ID: 1, Title: "Logo"}}, nil)
	if w := doRequest(r, http.MethodGet, "/works?limit=6", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), 0).Return(nil, errors.New("boom"))
	if w := doRequest(r, http.MethodGet, "/works?limit=abc", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestReviewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IReviewUseCase) *gin.Engine {
		h := NewReviewHandler(uc)
		r := gin.New()
		r.GET("/reviews", h.ListPublic)
		r.POST("/reviews", h.Submit)
		r.PUT("/admin/reviews/:id", h.Update)
		return r
	}

	t.Run("submit invalid rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Review{}, usecase.ErrInvalidReview)

		w := doRequest(newRouter(uc), http.MethodPost, "/reviews", `{"customer_name":"Ana","rating":9,"comment":"ok"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("public submit cannot verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Review) (entities.Review, error) {
			if r.Verified {
				t.Fatalf("public review must not arrive verified")
			}
			r.ID = 1
			return r, nil
		})

		w := doRequest(newRouter(uc), http.MethodPost, "/reviews", `{"customer_name":"Ana","rating":5,"comment":"ok","verified":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("admin verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Review) (entities.Review, error) {
			if r.ID != 4 || !r.Verified {
				t.Fatalf("unexpected review: %+v", r)
			}
			return r, nil
		})

		w := doRequest(newRouter(uc), http.MethodPut, "/admin/reviews/4", `{"customer_name":"Ana","rating":5,"comment":"ok","verified":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFAQHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFAQUseCase(ctrl)
	h := NewFAQHandler(uc)

	r := gin.New()
	r.PUT("/faq/:id", h.Update)

	uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.FAQ{}, usecase.ErrFAQNotFound)

	w := doRequest(r, http.MethodPut, "/faq/3", `{"question":"Rok izrade?","answer":"7 dana"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := decodeError(t, w).Code; got != "FAQ_NOT_FOUND" {
		t.Fatalf("unexpected code %s", got)
	}
}
