package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-costing-api/internal/config"
	"go-costing-api/internal/handler"
	"go-costing-api/internal/metrics"
	"go-costing-api/internal/repository"
	"go-costing-api/internal/service"
	"go-costing-api/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup JSON document store
	store := storage.NewStore(cfg.DataDir, cfg.CacheTTL)

	// 3. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(store)
	productRepo := repository.NewProductRepo(store)
	materialRepo := repository.NewMaterialRepo(store)
	ruleRepo := repository.NewRuleRepo(store)

	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, materialRepo, ruleRepo)
	materialService := service.NewMaterialService(materialRepo)
	calculatorService := service.NewCalculatorService(productRepo, materialRepo, ruleRepo, cfg.StrictCalculation)

	categoryHandler := handler.NewCategoryHandler(categoryService, productService, materialService)
	productHandler := handler.NewProductHandler(productService)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Product Costing API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	handler.RegisterRoutes(app, categoryHandler, productHandler, calculatorHandler)

	// 6. Metrics server on its own port
	metricsServer := metrics.NewServer(cfg.MetricsAddr)
	go func() {
		if err := metricsServer.Start(); err != nil {
			log.Println("Metrics server stopped:", err)
		}
	}()

	// 7. Start API server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// 8. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Println("Metrics server shutdown:", err)
	}

	log.Println("Server exited")
}
