package model

import (
	"time"
)

// User represents an application user, keyed by phone number.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RecipeRecord stores one generated recipe. Rows are never updated or
// deleted after creation.
type RecipeRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerPhone string    `gorm:"size:15;index;not null" json:"owner_phone"`
	DishName   string    `gorm:"size:255;not null" json:"dish_name"`
	Category   string    `gorm:"size:64" json:"category"`
	Recipe     string    `gorm:"type:text;not null" json:"recipe"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
