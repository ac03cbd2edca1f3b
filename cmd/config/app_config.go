package config

import (
	"Pento-Service/internal/api/handlers"
	"Pento-Service/internal/api/routes"
	"Pento-Service/internal/middleware"
	"Pento-Service/internal/utils"
	"Pento-Service/internal/utils/storage"
	"Pento-Service/pkg/chat"
	"Pento-Service/pkg/entitlement"
	"Pento-Service/pkg/foodref"
	"Pento-Service/pkg/gemini"
	"Pento-Service/pkg/googleplaces"
	"Pento-Service/pkg/imagesearch"
	"Pento-Service/pkg/jwt"
	"Pento-Service/pkg/openfoodfacts"
	"Pento-Service/pkg/places"
	"Pento-Service/pkg/scan"
	"Pento-Service/pkg/vision"
	"os"
	"time"

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
		BodyLimit:         20 * 1024 * 1024,
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// External clients
	geminiClient := gemini.NewGeminiClient(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)
	ocrClient := vision.NewOCRClient(utils.GetConfig("GOOGLE_VISION_API_KEY"))
	productClient := openfoodfacts.NewProductLookupClient(utils.GetConfig("OPEN_FOOD_FACTS_URL"))
	imageSearchClient := imagesearch.NewImageSearchClient(
		utils.GetConfig("GOOGLE_SEARCH_API_KEY"),
		utils.GetConfig("GOOGLE_SEARCH_ENGINE_ID"),
	)
	placesClient := googleplaces.NewPlacesClient(utils.GetConfig("GOOGLE_PLACES_API_KEY"))

	// Repository
	scanRepository := scan.NewScanRepository(db)
	entitlementRepository := entitlement.NewEntitlementRepository(db)
	foodRefRepository := foodref.NewFoodRefRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	entitlementService := entitlement.NewEntitlementService(entitlementRepository)
	scanService := scan.NewScanService(
		scanRepository,
		entitlementService,
		geminiClient,
		ocrClient,
		productClient,
		imageSearchClient,
		s3,
	)
	chatService := chat.NewChatService(geminiClient, entitlementService)
	foodRefService := foodref.NewFoodRefService(foodRefRepository)
	placesService := places.NewPlacesService(placesClient, entitlementService)

	// Handler
	scanHandler := handlers.NewScanHandler(scanService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	foodRefHandler := handlers.NewFoodRefHandler(foodRefService)
	placesHandler := handlers.NewPlacesHandler(placesService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ScanHandler:    scanHandler,
		ChatHandler:    chatHandler,
		FoodRefHandler: foodRefHandler,
		PlacesHandler:  placesHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
