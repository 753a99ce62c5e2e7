package routes

import (
	"Restaurant-Backend/domain"
	"Restaurant-Backend/internal/api/handlers"
	"Restaurant-Backend/internal/api/presenters"
	"Restaurant-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	CategoryHandler  handlers.CategoryHandler
	MenuItemHandler  handlers.MenuItemHandler
	FranchiseHandler handlers.FranchiseHandler
	OfferHandler     handlers.OfferHandler
	Middleware       middleware.Middleware

	// EnsureStore reports whether the backing store is reachable,
	// reconnecting if the cached handle went stale.
	EnsureStore func() error
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.MenuCategories()
	c.MenuItems()
	c.Franchise()
	c.Offers()
	c.GuestRoute()
}

func (c *Config) MenuCategories() {
	categories := c.App.Group("/api/v1/menu/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Post("", c.CategoryHandler.CreateCategory)
		categories.Get("/:id", c.CategoryHandler.GetCategory)
		categories.Put("/:id", c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) MenuItems() {
	items := c.App.Group("/api/v1/menu/items")

	// Fixed paths first so they never get captured by /:id.
	items.Get("/grouped", c.MenuItemHandler.GetGroupedMenu)
	items.Post("/image", c.MenuItemHandler.UploadItemImage)
	items.Post("/backfill-addons", c.MenuItemHandler.BackfillAddOns)

	// Basic CRUD operations
	items.Get("", c.MenuItemHandler.GetMenuItems)
	items.Post("", c.MenuItemHandler.CreateMenuItem)
	items.Get("/:id", c.MenuItemHandler.GetMenuItem)
	items.Put("/:id", c.MenuItemHandler.UpdateMenuItem)
	items.Delete("/:id", c.MenuItemHandler.DeleteMenuItem)
}

func (c *Config) Franchise() {
	franchise := c.App.Group("/api/v1/franchise")
	{
		franchise.Post("/apply", c.FranchiseHandler.ApplyFranchise)
		franchise.Get("/applications", c.FranchiseHandler.GetApplications)
		franchise.Patch("/applications/:id", c.FranchiseHandler.UpdateApplicationStatus)
	}
}

func (c *Config) Offers() {
	offers := c.App.Group("/api/v1/offers")
	{
		offers.Get("", c.OfferHandler.GetOffers)
		offers.Post("", c.OfferHandler.CreateOffer)
		offers.Put("/:id", c.OfferHandler.UpdateOffer)
		offers.Delete("/:id", c.OfferHandler.DeleteOffer)
	}
}

func (c *Config) GuestRoute() {
	ensure := c.EnsureStore
	c.App.Get("/api/ping", func(ctx *fiber.Ctx) error {
		if ensure != nil {
			if err := ensure(); err != nil {
				return presenters.ErrorResponse(ctx, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
			}
		}
		return presenters.SuccessResponse(ctx, nil, fiber.StatusOK, domain.MessageSuccessHealthCheck)
	})
}
