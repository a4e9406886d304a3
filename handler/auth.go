package handler

import (
	"errors"
	"net/http"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"
	"github.com/Vtdarling/kitchenAI/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler interface
type AuthHandler interface {
	Login(c *gin.Context)
}

// authHandler struct
type authHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates and returns a new AuthHandler
func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles phone-based registration and login
func (h *authHandler) Login(c *gin.Context) {
	var loginRequest entity.LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, token, err := h.authService.RegisterOrLogin(c.Request.Context(), loginRequest.Name, loginRequest.Phone)
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("login failed", zap.String("phone", loginRequest.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, entity.LoginResponse{
		Token: token,
		User:  user,
	})
}
