package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vtdarling/kitchenAI/controller"
	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"
	"github.com/Vtdarling/kitchenAI/util"

	"go.uber.org/zap"
)

// AuthService issues and verifies identity tokens for phone-based login.
type AuthService interface {
	// RegisterOrLogin resolves the user for a phone number, creating one on
	// first login, and returns the user plus a signed token.
	RegisterOrLogin(ctx context.Context, name, phone string) (*entity.User, string, error)
	// Verify checks a raw token string. Verification is stateless: validity
	// is fully determined by signature and expiry. There is no revocation
	// store, so a leaked token stays valid until it expires.
	Verify(token string) (*util.Claims, error)
}

// authService struct
type authService struct {
	userController controller.UserController
	jwtSecretKey   []byte
	tokenTTL       time.Duration
}

// NewAuthService creates and returns a new AuthService
func NewAuthService(userController controller.UserController, config *entity.Config) AuthService {
	return &authService{
		userController: userController,
		jwtSecretKey:   config.Auth.JWTSecretKey,
		tokenTTL:       time.Duration(config.Auth.TokenTTLHours) * time.Hour,
	}
}

// RegisterOrLogin handles phone-based registration and login in one step.
// The first login for a phone creates the user; later logins with a
// different name keep the original name (first write wins).
func (a *authService) RegisterOrLogin(ctx context.Context, name, phone string) (*entity.User, string, error) {
	if !util.ValidateName(name) {
		return nil, "", fmt.Errorf("%w: name must not be empty", entity.ErrValidation)
	}
	if !util.ValidatePhone(phone) {
		return nil, "", fmt.Errorf("%w: phone must be exactly 10 digits", entity.ErrValidation)
	}
	// Normalize once so padded input resolves to the same user record and
	// token claims as the bare number.
	phone = strings.TrimSpace(phone)

	user, err := a.userController.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("%w: lookup user: %v", entity.ErrStore, err)
	}

	if user == nil {
		if err := a.userController.CreateUser(ctx, &entity.User{Name: name, Phone: phone}); err != nil {
			return nil, "", fmt.Errorf("%w: create user: %v", entity.ErrStore, err)
		}
		// Re-read so a concurrent first login for the same phone resolves
		// to the single row that won the unique-index race.
		user, err = a.userController.GetUserByPhone(ctx, phone)
		if err != nil {
			return nil, "", fmt.Errorf("%w: reload user after create: %v", entity.ErrStore, err)
		}
		if user == nil {
			return nil, "", fmt.Errorf("%w: user missing after create", entity.ErrStore)
		}
		logger.Info("registered new user", zap.String("phone", phone))
	}

	token, err := util.GenerateJWT(user.ID, user.Phone, user.Name, a.jwtSecretKey, a.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Verify validates a raw token string and returns its claims.
func (a *authService) Verify(token string) (*util.Claims, error) {
	if token == "" {
		return nil, entity.ErrMissingToken
	}
	claims, err := util.ValidateJWT(token, a.jwtSecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidToken, err)
	}
	return claims, nil
}
