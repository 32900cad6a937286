package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"laserwood/internal/domain/pricing"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// idParam reads a positive numeric :id path parameter.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// limitQuery reads an optional ?limit=; anything unparsable counts as absent.
func limitQuery(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// mapPricingError covers the engine errors shared by quotes, inquiries and
// the pricing rule admin.
func mapPricingError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, pricing.ErrInvalidDimension):
		return pkg.NewDomainErrorSimple("INVALID_DIMENSION", "Width and height must be positive", http.StatusBadRequest), true
	case errors.Is(err, pricing.ErrInvalidModelType):
		return pkg.NewDomainErrorSimple("INVALID_MODEL_TYPE", "Model type must be single, double or 3d_letters", http.StatusBadRequest), true
	case errors.Is(err, pricing.ErrInvalidLEDType):
		return pkg.NewDomainErrorSimple("INVALID_LED_TYPE", "LED type must be 5V or 220V", http.StatusBadRequest), true
	case errors.Is(err, pricing.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound), true
	case errors.Is(err, pricing.ErrPricingRuleNotFound):
		return pkg.NewDomainErrorSimple("PRICING_RULE_NOT_FOUND", "No pricing rule configured for this material", http.StatusNotFound), true
	case errors.Is(err, pricing.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Material has no usable price per m2", http.StatusUnprocessableEntity), true
	case errors.Is(err, pricing.ErrInvalidPricingRule):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_RULE", "Pricing rule values are out of range", http.StatusUnprocessableEntity), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

func validationError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
}
