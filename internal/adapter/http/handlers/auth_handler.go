package handlers

import (
	"errors"
	"net/http"

	request "laserwood/internal/adapter/http/dto/request"
	response "laserwood/internal/adapter/http/dto/response"
	"laserwood/internal/usecase"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      401      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	token, expiresAt, err := h.usecase.Login(c.Request.Context(), payload.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		abortWith(c, errUnauthorized)
		return
	}
	if err != nil {
		abortWith(c, internalError(err))
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
