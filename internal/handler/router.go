package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API surface on app. Kept separate from main so
// tests can build the same app against in-memory data.
func RegisterRoutes(app *fiber.App, categories *CategoryHandler, products *ProductHandler, calculator *CalculatorHandler) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "API running",
			"timestamp": time.Now().UTC(),
		})
	})

	categoryRoutes := api.Group("/categories")
	categoryRoutes.Get("/", categories.GetAll)
	categoryRoutes.Post("/", categories.Create)
	categoryRoutes.Get("/:id", categories.GetByID)
	categoryRoutes.Get("/:id/products", categories.GetProducts)
	categoryRoutes.Get("/:id/materials", categories.GetMaterials)

	productRoutes := api.Group("/products")
	productRoutes.Get("/", products.GetAll)
	productRoutes.Post("/", products.Create)
	// category route registered before /:id so "category" is not taken as an id
	productRoutes.Get("/category/:categoryId", products.GetByCategory)
	productRoutes.Get("/:id", products.GetByID)
	productRoutes.Get("/:id/details", products.GetDetails)

	calculatorRoutes := api.Group("/calculator")
	calculatorRoutes.Post("/calculate", calculator.Calculate)
	calculatorRoutes.Post("/batch", calculator.CalculateBatch)
	calculatorRoutes.Post("/estimate", calculator.QuickEstimate)
	calculatorRoutes.Post("/export", calculator.Export)
	calculatorRoutes.Get("/rules/:categoryId", calculator.GetRules)
}
