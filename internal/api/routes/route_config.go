package routes

import (
	"Pento-Service/internal/api/handlers"
	"Pento-Service/internal/middleware"
	"Pento-Service/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ScanHandler    handlers.ScanHandler
	ChatHandler    handlers.ChatHandler
	FoodRefHandler handlers.FoodRefHandler
	PlacesHandler  handlers.PlacesHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Scan()
	c.Chat()
	c.FoodRefs()
	c.Places()
	c.GuestRoute()
}

func (c *Config) Scan() {
	scans := c.App.Group("/api/v1/scan", c.Middleware.AuthMiddleware(c.JWTService))
	// scan routes
	{
		scans.Post("/food", c.ScanHandler.ScanFoodImage)
		scans.Post("/receipt", c.ScanHandler.ScanReceipt)
		scans.Post("/barcode", c.ScanHandler.ScanBarcode)
	}
}

func (c *Config) Chat() {
	c.App.Post("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService), c.ChatHandler.Chat)
}

func (c *Config) FoodRefs() {
	refs := c.App.Group("/api/v1/food-refs")
	// read-only catalog surface
	{
		refs.Get("", c.FoodRefHandler.GetFoodReferences)
		refs.Get("/search", c.FoodRefHandler.SearchFoodReferences)
		refs.Get("/:id", c.FoodRefHandler.GetFoodReferenceDetails)
	}
}

func (c *Config) Places() {
	c.App.Get("/api/v1/places/nearby", c.Middleware.AuthMiddleware(c.JWTService), c.PlacesHandler.GetNearbyPlaces)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
