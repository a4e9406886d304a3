package repository

import (
	"context"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/mapper"
	"github.com/Vtdarling/kitchenAI/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// CreateUser inserts a user unless one with the same phone already exists.
// The conflict clause makes concurrent first-logins for the same phone safe:
// the unique index on phone decides the winner and the loser's insert is a
// no-op. Callers should re-read by phone afterwards.
func (r *UserRepository) CreateUser(ctx context.Context, userEntity *entity.User) error {
	userModel := mapper.UserEntityToModel(userEntity)

	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(userModel).Error; err != nil {
		return err
	}
	return nil
}

// GetUserByPhone fetches a user by phone number. Returns (nil, nil) when no
// user exists for the phone.
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&userModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	userEntity := mapper.UserModelToEntity(&userModel)
	return userEntity, nil
}
