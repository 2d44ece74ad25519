package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/handlers"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/routes"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/middleware"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/utils"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/utils/storage"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/calculate"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/ingredient"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/inventory"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/jwt"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/recipe"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/reference"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	referenceRepository := reference.NewReferenceRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	calculateService := calculate.NewCalculateService(recipeRepository, inventoryService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	referenceService := reference.NewReferenceService(referenceRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	calculateHandler := handlers.NewCalculateHandler(calculateService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	referenceHandler := handlers.NewReferenceHandler(referenceService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		CalculateHandler:  calculateHandler,
		InventoryHandler:  inventoryHandler,
		IngredientHandler: ingredientHandler,
		ReferenceHandler:  referenceHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
