package routes

import (
	"github.com/gofiber/fiber/v2"

	"replate-backend/entities"
	"replate-backend/internal/api/handlers"
	"replate-backend/internal/middleware"
	"replate-backend/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	ClaimHandler     handlers.ClaimHandler
	DonationHandler  handlers.DonationHandler
	AnalyticsHandler handlers.AnalyticsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.FlashSales()
	c.Claims()
	c.Donations()
	c.Analytics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.Middleware.RequireRoles(entities.RoleStaff), c.FoodHandler.GetDashboardStats)

	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)

	// staff-only mutations
	staffOnly := c.Middleware.RequireRoles(entities.RoleStaff)
	foodItems.Post("", staffOnly, c.FoodHandler.AddFoodItem)
	foodItems.Put("/:id", staffOnly, c.FoodHandler.UpdateFoodItem)
	foodItems.Post("/:id/flash-sale", staffOnly, c.FoodHandler.CreateFlashSale)
	foodItems.Post("/:id/donate", staffOnly, c.FoodHandler.MarkDonated)
}

func (c *Config) FlashSales() {
	flashSales := c.App.Group("/api/v1/flash-sales", c.Middleware.AuthMiddleware(c.JWTService))
	flashSales.Get("", c.ClaimHandler.GetFlashSales)
	flashSales.Post("/:id/claim", c.Middleware.RequireRoles(entities.RoleStudent), c.ClaimHandler.ClaimFoodItem)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRoles(entities.RoleStudent),
	)
	claims.Get("", c.ClaimHandler.GetClaims)
	claims.Post("/:id/pickup", c.ClaimHandler.MarkPickedUp)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRoles(entities.RoleVolunteer),
	)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/pending", c.DonationHandler.GetPendingItems)
	donations.Post("", c.DonationHandler.SchedulePickup)
	donations.Patch("/:id/status", c.DonationHandler.UpdateDonationStatus)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	analytics.Get("/canteen/:id", c.Middleware.RequireRoles(entities.RoleStaff), c.AnalyticsHandler.GetCanteenAnalytics)
	analytics.Get("/platform", c.Middleware.RequireRoles(), c.AnalyticsHandler.GetPlatformStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
