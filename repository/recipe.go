package repository

import (
	"context"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/mapper"
	"github.com/Vtdarling/kitchenAI/model"

	"gorm.io/gorm"
)

// RecipeRepository is a struct that holds the database connection.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates and returns a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{
		DB: db,
	}
}

// CreateRecipe stores a new recipe record and fills in the generated ID and
// creation time on the entity.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipeEntity *entity.RecipeRecord) error {
	recipeModel := mapper.RecipeEntityToModel(recipeEntity)

	if err := r.DB.WithContext(ctx).Create(recipeModel).Error; err != nil {
		return err
	}

	recipeEntity.ID = recipeModel.ID
	recipeEntity.CreatedAt = recipeModel.CreatedAt
	return nil
}

// ListRecipesByOwner fetches the owner's recipes, newest first. A limit of 0
// means no limit. Queries are always scoped by owner phone.
func (r *RecipeRepository) ListRecipesByOwner(ctx context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error) {
	var recipeModels []model.RecipeRecord
	q := r.DB.WithContext(ctx).
		Where("owner_phone = ?", ownerPhone).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recipeModels).Error; err != nil {
		return nil, err
	}

	recipes := make([]entity.RecipeRecord, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = *mapper.RecipeModelToEntity(&recipeModels[i])
	}
	return recipes, nil
}
