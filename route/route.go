package route

import (
	"fmt"
	"net/http"

	"github.com/Vtdarling/kitchenAI/controller"
	"github.com/Vtdarling/kitchenAI/db"
	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/handler"
	"github.com/Vtdarling/kitchenAI/llm"
	"github.com/Vtdarling/kitchenAI/middleware"
	"github.com/Vtdarling/kitchenAI/model"
	"github.com/Vtdarling/kitchenAI/pipeline"
	"github.com/Vtdarling/kitchenAI/repository"
	"github.com/Vtdarling/kitchenAI/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes the database, wires every layer together and
// registers the HTTP routes on the given engine.
func SetupRoutes(r *gin.Engine, config *entity.Config) error {

	if err := db.InitDB(config); err != nil {
		return err
	}
	gormDbInstance := db.GetDBInstance()
	migrationErr := gormDbInstance.AutoMigrate(
		&model.User{},
		&model.RecipeRecord{},
	)
	if migrationErr != nil {
		return migrationErr
	}

	userRepository := repository.NewUserRepository(gormDbInstance)
	recipeRepository := repository.NewRecipeRepository(gormDbInstance)

	userController := controller.NewUserController(userRepository)
	recipeController := controller.NewRecipeController(recipeRepository)

	// Model client and pipeline variant
	modelClient := llm.NewClient(config.LLM)
	recipePipeline, err := buildPipeline(config.Pipeline.Variant, modelClient)
	if err != nil {
		return err
	}

	// Initialize services
	authService := service.NewAuthService(userController, config)
	recipeService := service.NewRecipeService(recipePipeline, recipeController)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Rate limiter runs before everything, auth only on the protected group
	rateLimiter := middleware.NewRateLimiter(config.RateLimit)
	r.Use(middleware.RequestLogger())
	r.Use(rateLimiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	publicRoutes := r.Group("/")
	publicRoutes.POST("/auth/login", authHandler.Login)

	protectedRoutes := r.Group("/")
	protectedRoutes.Use(middleware.AuthenticateJWT(authService))
	protectedRoutes.POST("/recipes", recipeHandler.Generate)
	protectedRoutes.GET("/recipes/history", recipeHandler.History)

	return nil
}

func buildPipeline(variant string, client pipeline.ModelClient) (*pipeline.Pipeline, error) {
	switch variant {
	case "two-stage":
		return pipeline.NewTwoStagePipeline(client), nil
	case "guarded":
		return pipeline.NewGuardedPipeline(client), nil
	default:
		return nil, fmt.Errorf("unknown pipeline variant %q", variant)
	}
}
