package entity

import (
	"time"
)

// User represents an application user, identified by phone number.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeRecord is one generated recipe owned by a user.
type RecipeRecord struct {
	ID         uint      `json:"id"`
	OwnerPhone string    `json:"-"`
	DishName   string    `json:"dish_name"`
	Category   string    `json:"category"`
	Recipe     string    `json:"recipe"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LoginResponse carries the issued token and the resolved user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RecipeRequest is the body of POST /recipes.
type RecipeRequest struct {
	Dish string `json:"dish"`
}
