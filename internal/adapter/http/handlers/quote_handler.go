package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	response "laserwood/internal/adapter/http/dto/response"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the live configurator price and the offer PDF.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Price a sign configuration
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.QuoteRequest  true  "Configuration"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.CalculateQuote(c.Request.Context(), payload.ToConfiguration())
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteResult(result))
}

// PDF godoc
// @Summary      Offer document for a sign configuration
// @Tags         quotes
// @Accept       json
// @Produce      application/pdf
// @Param        request  body  request.QuoteRequest  true  "Configuration"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/pdf [post]
func (h *QuoteHandler) PDF(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	doc, _, err := h.usecase.RenderQuotePDF(c.Request.Context(), payload.ToConfiguration())
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ponuda-%dx%d.pdf"`, int64(payload.WidthMM), int64(payload.HeightMM)))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapQuoteError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrValidation) {
		return validationError(err)
	}
	if appErr, ok := mapPricingError(err); ok {
		return appErr
	}
	return internalError(err)
}
