package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"
	"github.com/Vtdarling/kitchenAI/middleware"
	"github.com/Vtdarling/kitchenAI/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeHandler interface
type RecipeHandler interface {
	Generate(c *gin.Context)
	History(c *gin.Context)
}

// recipeHandler struct
type recipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates and returns a new RecipeHandler
func NewRecipeHandler(recipeService service.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

// Generate runs the recipe pipeline for the authenticated caller's dish
func (h *recipeHandler) Generate(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing"})
		return
	}

	var req entity.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.recipeService.Generate(c.Request.Context(), claims.Phone, req.Dish)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyDish):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish name must not be empty"})
		case errors.Is(err, entity.ErrModelUnavailable):
			// Provider detail stays in the server logs.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Recipe generation is temporarily unavailable"})
		default:
			logger.Error("recipe generation failed", zap.String("phone", claims.Phone), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         record.ID,
		"dish_name":  record.DishName,
		"category":   record.Category,
		"recipe":     record.Recipe,
		"created_at": record.CreatedAt,
	})
}

// History lists the authenticated caller's recipes, newest first
func (h *recipeHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.recipeService.History(c.Request.Context(), claims.Phone, limit)
	if err != nil {
		logger.Error("history lookup failed", zap.String("phone", claims.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": records})
}
