package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	"laserwood/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SiteHandler groups the small storefront endpoints: counters and
// newsletter signup.
type SiteHandler struct {
	stats      usecase.IStatsUseCase
	newsletter usecase.INewsletterUseCase
}

func NewSiteHandler(stats usecase.IStatsUseCase, newsletter usecase.INewsletterUseCase) *SiteHandler {
	return &SiteHandler{stats: stats, newsletter: newsletter}
}

func (h *SiteHandler) Stats(c *gin.Context) {
	s, err := h.stats.Get(c.Request.Context())
	if err != nil {
		abortWith(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// Subscribe answers 201 for repeated emails as well.
func (h *SiteHandler) Subscribe(c *gin.Context) {
	var payload request.NewsletterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	err := h.newsletter.Subscribe(c.Request.Context(), payload.Email)
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		abortWith(c, validationError(&usecase.ValidationError{Field: "email", Reason: "not a valid address"}))
		return
	case err != nil:
		abortWith(c, internalError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}
