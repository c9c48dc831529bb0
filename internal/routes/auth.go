package routes

import (
	"net/http"

	"Rateio/internal/contracts"
	"Rateio/internal/domain/auth"
	appErrors "Rateio/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	if err := h.AuthService.Login(auth.Login{Email: body.Email, Password: body.Password}); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(body.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LoginResponse{Token: token})
}
