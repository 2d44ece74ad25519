package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/handlers"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/middleware"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	CalculateHandler  handlers.CalculateHandler
	InventoryHandler  handlers.InventoryHandler
	IngredientHandler handlers.IngredientHandler
	ReferenceHandler  handlers.ReferenceHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Calculate()
	c.Inventory()
	c.Ingredients()
	c.Reference()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetAllRecipes)
		recipes.Get("/categories", c.ReferenceHandler.GetRecipeCategories)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

		auth := c.Middleware.AuthMiddleware(c.JWTService)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Post("/categories", auth, c.ReferenceHandler.CreateRecipeCategory)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
		recipes.Put("/:id/ingredients", auth, c.RecipeHandler.ReplaceIngredients)
		recipes.Post("/:id/image", auth, c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) Calculate() {
	c.App.Get("/api/v1/calculate",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.CalculateHandler.GetCalculatedRecipes,
	)
}

func (c *Config) Inventory() {
	inv := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	{
		inv.Get("", c.InventoryHandler.GetInventory)
		inv.Post("", c.InventoryHandler.EnsureInventory)
		inv.Post("/items", c.InventoryHandler.AddIngredient)
		inv.Patch("/items/:ingredient_id", c.InventoryHandler.AdjustQuantity)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
		ingredients.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.IngredientHandler.CreateIngredient)
	}
}

func (c *Config) Reference() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	units := c.App.Group("/api/v1/units")
	units.Get("", c.ReferenceHandler.GetUnits)
	units.Post("", auth, c.ReferenceHandler.CreateUnit)

	colors := c.App.Group("/api/v1/colors")
	colors.Get("", c.ReferenceHandler.GetColors)
	colors.Post("", auth, c.ReferenceHandler.CreateColor)

	categories := c.App.Group("/api/v1/ingredient-categories")
	categories.Get("", c.ReferenceHandler.GetIngredientCategories)
	categories.Get("/:category_id/colors", c.IngredientHandler.GetColorsForCategory)
	categories.Post("", auth, c.ReferenceHandler.CreateIngredientCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
