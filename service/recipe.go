package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vtdarling/kitchenAI/controller"
	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"
	"github.com/Vtdarling/kitchenAI/pipeline"

	"go.uber.org/zap"
)

// DefaultCategory is stored when the pipeline variant has no categorization
// stage. The default belongs to the persistence step, not the pipeline.
const DefaultCategory = "Gourmet"

// RecipeService runs the generation pipeline and persists the result.
type RecipeService interface {
	Generate(ctx context.Context, ownerPhone, dish string) (*entity.RecipeRecord, error)
	History(ctx context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error)
}

// recipeService struct
type recipeService struct {
	pipeline         *pipeline.Pipeline
	recipeController controller.RecipeController
}

// NewRecipeService creates and returns a new RecipeService
func NewRecipeService(p *pipeline.Pipeline, recipeController controller.RecipeController) RecipeService {
	return &recipeService{
		pipeline:         p,
		recipeController: recipeController,
	}
}

// Generate runs the pipeline for a dish and stores the record. No record is
// written unless the pipeline fully succeeds.
func (s *recipeService) Generate(ctx context.Context, ownerPhone, dish string) (*entity.RecipeRecord, error) {
	result, err := s.pipeline.Run(ctx, dish)
	if err != nil {
		if !errors.Is(err, entity.ErrEmptyDish) {
			logger.Error("pipeline run failed",
				zap.String("dish", dish),
				zap.String("phone", ownerPhone),
				zap.Error(err))
		}
		return nil, err
	}

	category := DefaultCategory
	if result.Category != nil {
		category = *result.Category
	}

	record := &entity.RecipeRecord{
		OwnerPhone: ownerPhone,
		DishName:   dish,
		Category:   category,
		Recipe:     result.Recipe,
	}
	if err := s.recipeController.CreateRecipe(ctx, record); err != nil {
		logger.Error("failed to store recipe",
			zap.String("dish", dish),
			zap.String("phone", ownerPhone),
			zap.Error(err))
		return nil, fmt.Errorf("%w: create recipe: %v", entity.ErrStore, err)
	}

	logger.Info("recipe generated",
		zap.String("dish", dish),
		zap.String("phone", ownerPhone),
		zap.String("category", category))
	return record, nil
}

// History lists the caller's recipes, newest first. Results are always
// scoped to the authenticated owner's phone.
func (s *recipeService) History(ctx context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error) {
	records, err := s.recipeController.ListRecipesByOwner(ctx, ownerPhone, limit)
	if err != nil {
		logger.Error("failed to list recipes",
			zap.String("phone", ownerPhone),
			zap.Error(err))
		return nil, fmt.Errorf("%w: list recipes: %v", entity.ErrStore, err)
	}
	return records, nil
}
