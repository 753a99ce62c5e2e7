package config

import (
	"os"
	"time"

	"Restaurant-Backend/internal/api/handlers"
	"Restaurant-Backend/internal/api/presenters"
	"Restaurant-Backend/internal/api/routes"
	"Restaurant-Backend/internal/middleware"
	"Restaurant-Backend/internal/utils"
	"Restaurant-Backend/internal/utils/storage"
	"Restaurant-Backend/pkg/category"
	"Restaurant-Backend/pkg/franchise"
	"Restaurant-Backend/pkg/menuitem"
	"Restaurant-Backend/pkg/offer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler:      presenters.AppErrorHandler,
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	menuItemRepository := menuitem.NewMenuItemRepository(db)
	franchiseRepository := franchise.NewFranchiseRepository(db)
	offerRepository := offer.NewOfferRepository(db)

	// Service
	categoryService := category.NewCategoryService(categoryRepository)
	menuItemService := menuitem.NewMenuItemService(menuItemRepository, categoryRepository, s3)
	franchiseService := franchise.NewFranchiseService(franchiseRepository)
	offerService := offer.NewOfferService(offerRepository)

	// Handler
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	menuItemHandler := handlers.NewMenuItemHandler(menuItemService, validator)
	franchiseHandler := handlers.NewFranchiseHandler(franchiseService, validator)
	offerHandler := handlers.NewOfferHandler(offerService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		CategoryHandler:  categoryHandler,
		MenuItemHandler:  menuItemHandler,
		FranchiseHandler: franchiseHandler,
		OfferHandler:     offerHandler,
		Middleware:       middlewares,
		EnsureStore: func() error {
			_, err := EnsureDB()
			return err
		},
	}
	routesConfig.Setup()
	return app, nil
}
