package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	usecase usecase.IWorkUseCase
}

func NewWorkHandler(uc usecase.IWorkUseCase) *WorkHandler {
	return &WorkHandler{usecase: uc}
}

func (h *WorkHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), limitQuery(c))
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *WorkHandler) Create(c *gin.Context) {
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(0))
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WorkHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	w, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID), errors.Is(err, usecase.ErrInvalidWork):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
