package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "laserwood/internal/adapter/http/dto/request"
	response "laserwood/internal/adapter/http/dto/response"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InquiryHandler handles the public inquiry form and the admin inquiry board.
type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// Submit stores a public inquiry. The response carries the server price,
// which may differ from what the configurator showed.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request  body      request.InquiryRequest  true  "Inquiry"
// @Success      201      {object}  response.InquirySubmittedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	inquiry, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(c.ClientIP()))
	if err != nil {
		abortWith(c, mapInquiryError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmittedInquiry(inquiry))
}

func (h *InquiryHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		abortWith(c, mapInquiryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInquiries(list))
}

func (h *InquiryHandler) GetByID(c *gin.Context) {
	inquiry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapInquiryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var payload request.InquiryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	inquiry, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		abortWith(c, mapInquiryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

func (h *InquiryHandler) Export(c *gin.Context) {
	book, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		abortWith(c, mapInquiryError(err))
		return
	}

	name := fmt.Sprintf("upiti-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, book)
}

func mapInquiryError(err error) *pkg.AppError {
	if appErr, ok := mapPricingError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return validationError(err)
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInvalidInquiryStatus):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many inquiries, try again later", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Inquiry could not be saved", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
