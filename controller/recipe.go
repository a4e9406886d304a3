package controller

import (
	"context"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/repository"
)

// RecipeController interface
type RecipeController interface {
	CreateRecipe(ctx context.Context, recipe *entity.RecipeRecord) error
	ListRecipesByOwner(ctx context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error)
}

// recipeController struct
type recipeController struct {
	recipeRepository repository.RecipeRepository
}

// NewRecipeController creates and returns a new RecipeController
func NewRecipeController(recipeRepository *repository.RecipeRepository) RecipeController {
	return &recipeController{
		recipeRepository: *recipeRepository,
	}
}

// CreateRecipe stores a generated recipe record
func (c *recipeController) CreateRecipe(ctx context.Context, recipe *entity.RecipeRecord) error {
	err := c.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		return err
	}
	return nil
}

// ListRecipesByOwner lists the owner's recipes, newest first
func (c *recipeController) ListRecipesByOwner(ctx context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error) {
	recipes, err := c.recipeRepository.ListRecipesByOwner(ctx, ownerPhone, limit)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
