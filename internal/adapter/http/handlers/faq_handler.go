package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	usecase usecase.IFAQUseCase
}

func NewFAQHandler(uc usecase.IFAQUseCase) *FAQHandler {
	return &FAQHandler{usecase: uc}
}

func (h *FAQHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapFAQError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FAQHandler) Create(c *gin.Context) {
	var payload request.FAQRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	f, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(0))
	if err != nil {
		abortWith(c, mapFAQError(err))
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload request.FAQRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	f, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		abortWith(c, mapFAQError(err))
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapFAQError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFAQError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFAQID), errors.Is(err, usecase.ErrInvalidFAQ):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFAQNotFound):
		return pkg.NewDomainErrorSimple("FAQ_NOT_FOUND", "FAQ entry not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
