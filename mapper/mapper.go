package mapper

import (
	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/model"
)

// UserEntityToModel maps a User entity to the corresponding model.
func UserEntityToModel(entity *entity.User) *model.User {
	return &model.User{
		ID:    entity.ID,
		Name:  entity.Name,
		Phone: entity.Phone,
	}
}

// UserModelToEntity maps a User model to the corresponding entity.
func UserModelToEntity(model *model.User) *entity.User {
	return &entity.User{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
	}
}

// RecipeEntityToModel maps a RecipeRecord entity to the corresponding model.
func RecipeEntityToModel(entity *entity.RecipeRecord) *model.RecipeRecord {
	return &model.RecipeRecord{
		ID:         entity.ID,
		OwnerPhone: entity.OwnerPhone,
		DishName:   entity.DishName,
		Category:   entity.Category,
		Recipe:     entity.Recipe,
	}
}

// RecipeModelToEntity maps a RecipeRecord model to the corresponding entity.
func RecipeModelToEntity(model *model.RecipeRecord) *entity.RecipeRecord {
	return &entity.RecipeRecord{
		ID:         model.ID,
		OwnerPhone: model.OwnerPhone,
		DishName:   model.DishName,
		Category:   model.Category,
		Recipe:     model.Recipe,
		CreatedAt:  model.CreatedAt,
	}
}
