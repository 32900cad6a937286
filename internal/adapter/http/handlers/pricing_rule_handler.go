package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

type PricingRuleHandler struct {
	usecase usecase.IPricingRuleUseCase
}

func NewPricingRuleHandler(uc usecase.IPricingRuleUseCase) *PricingRuleHandler {
	return &PricingRuleHandler{usecase: uc}
}

func (h *PricingRuleHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PricingRuleHandler) Create(c *gin.Context) {
	var payload request.PricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(0))
	if err != nil {
		abortWith(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *PricingRuleHandler) GetByMaterialID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rule, err := h.usecase.GetByMaterialID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, rule)
}

// Update changes coefficients only; the material of a rule is fixed.
func (h *PricingRuleHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload request.PricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	rule, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		abortWith(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, rule)
}

func mapPricingRuleError(err error) *pkg.AppError {
	if appErr, ok := mapPricingError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingRuleID), errors.Is(err, usecase.ErrInvalidMaterialID):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingRuleAlreadyExists):
		return pkg.NewDomainErrorSimple("PRICING_RULE_ALREADY_EXISTS", "Material already has a pricing rule", http.StatusConflict)
	default:
		return internalError(err)
	}
}
