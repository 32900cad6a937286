package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

type HomepageHandler struct {
	usecase usecase.IHomepageUseCase
}

func NewHomepageHandler(uc usecase.IHomepageUseCase) *HomepageHandler {
	return &HomepageHandler{usecase: uc}
}

// Get godoc
// @Summary      Homepage copy
// @Tags         site
// @Produce      json
// @Success      200  {object}  entities.HomepageSettings
// @Failure      404  {object}  pkg.HTTPError
// @Router       /homepage [get]
func (h *HomepageHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		abortWith(c, mapHomepageError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *HomepageHandler) Update(c *gin.Context) {
	var payload request.HomepageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapHomepageError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapHomepageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHomepage):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHomepageNotFound):
		return pkg.NewDomainErrorSimple("HOMEPAGE_NOT_FOUND", "Homepage settings not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
