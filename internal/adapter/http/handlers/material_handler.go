package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(0))
	if err != nil {
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapMaterialError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMaterialError(err error) *pkg.AppError {
	if appErr, ok := mapPricingError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID), errors.Is(err, usecase.ErrInvalidMaterial):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
