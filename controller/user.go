package controller

import (
	"context"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/repository"
)

// UserController interface
type UserController interface {
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) error
}

// userController struct
type userController struct {
	userRepository repository.UserRepository
}

// NewUserController creates and returns a new UserController
func NewUserController(userRepository *repository.UserRepository) UserController {
	return &userController{
		userRepository: *userRepository,
	}
}

// GetUserByPhone retrieves a single user by phone number
func (c *userController) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	user, err := c.userRepository.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser adds a new user to the database
func (c *userController) CreateUser(ctx context.Context, user *entity.User) error {
	err := c.userRepository.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	return nil
}
