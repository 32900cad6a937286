package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves verified reviews to the public and the moderation
// endpoints to admins.
type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) ListPublic(c *gin.Context) {
	list, err := h.usecase.ListPublic(c.Request.Context(), limitQuery(c))
	if err != nil {
		abortWith(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	r, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReviewHandler) ListAll(c *gin.Context) {
	list, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		abortWith(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload request.AdminReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	r, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		abortWith(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapReviewError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewID), errors.Is(err, usecase.ErrInvalidReview):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
