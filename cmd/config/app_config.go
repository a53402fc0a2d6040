package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"replate-backend/internal/api/handlers"
	"replate-backend/internal/api/routes"
	"replate-backend/internal/middleware"
	"replate-backend/internal/utils"
	"replate-backend/pkg/analytics"
	"replate-backend/pkg/claim"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/donation"
	"replate-backend/pkg/food"
	"replate-backend/pkg/jwt"
	"replate-backend/pkg/query"
	"replate-backend/pkg/user"
)

func NewApp(store *demostore.Store) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	err := os.MkdirAll(logDir, os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logDir+"/app.log",
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

	limiterMax, limiterExpiration := utils.GetLimiterSettings()
	app.Use(limiter.New(limiter.Config{
		Max:        limiterMax,
		Expiration: time.Duration(limiterExpiration) * time.Second,
	}))

	demoDelay := time.Duration(utils.GetDemoDelayMS()) * time.Millisecond

	// query client over the store
	queryClient := query.NewClient(store)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(store, jwtService, demoDelay)
	foodService := food.NewFoodService(store)
	claimService := claim.NewClaimService(store)
	donationService := donation.NewDonationService(store, demoDelay)
	analyticsService := analytics.NewAnalyticsService(store, queryClient)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		ClaimHandler:     claimHandler,
		DonationHandler:  donationHandler,
		AnalyticsHandler: analyticsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
