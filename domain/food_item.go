package domain

import (
	"errors"
	"time"

	"replate-backend/entities"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessCreateFlashSale   = "flash sale created successfully"
	MessageSuccessMarkDonated       = "food item marked for donation"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedCreateFlashSale   = "failed to create flash sale"
	MessageFailedMarkDonated       = "failed to mark food item for donation"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrFoodItemExpired   = errors.New("food item expired")
	ErrInvalidExpiryTime = errors.New("invalid expiry time")
	ErrInvalidQuantity   = errors.New("quantity must be positive and within stock")
	ErrInvalidDiscount   = errors.New("discount must be between 0 and 100")
	ErrAlreadyClaimed    = errors.New("food item already claimed")
	ErrNoCanteenAssigned = errors.New("no canteen assigned to user")
	ErrCanteenNotFound   = errors.New("canteen not found")
)

type (
	AddFoodItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Description   string   `json:"description" validate:"omitempty"`
		Category      string   `json:"category" validate:"required"`
		Quantity      int      `json:"quantity" validate:"required,min=1"`
		OriginalPrice *float64 `json:"original_price" validate:"omitempty,min=0"`
		ExpiryTime    string   `json:"expiry_time" validate:"required"`
		ImageURL      string   `json:"image_url" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		Quantity    *int   `json:"quantity" validate:"omitempty,min=0"`
		ExpiryTime  string `json:"expiry_time" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty,oneof=available flash_sale donated claimed expired"`
	}

	CreateFlashSaleRequest struct {
		DiscountPercent float64 `json:"discount_percent" validate:"required,gt=0,lte=100"`
		DurationMinutes int     `json:"duration_minutes" validate:"required,min=1"`
	}

	FlashSaleResponse struct {
		DiscountPercentage float64   `json:"discount_percentage"`
		EndTime            time.Time `json:"end_time"`
		IsActive           bool      `json:"is_active"`
	}

	FoodItemResponse struct {
		ID              string              `json:"id"`
		Name            string              `json:"name"`
		Description     string              `json:"description,omitempty"`
		Category        string              `json:"category"`
		Quantity        int                 `json:"quantity"`
		OriginalPrice   *float64            `json:"original_price"`
		DiscountedPrice *float64            `json:"discounted_price"`
		ExpiryTime      time.Time           `json:"expiry_time"`
		Status          entities.FoodStatus `json:"status"`
		ImageURL        string              `json:"image_url,omitempty"`
		CreatedAt       time.Time           `json:"created_at"`
		CanteenID       string              `json:"canteen_id"`
		CanteenName     string              `json:"canteen_name,omitempty"`
		CanteenLocation string              `json:"canteen_location,omitempty"`
		FlashSale       *FlashSaleResponse  `json:"flash_sale,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems       int     `json:"total_items"`
		AvailableItems   int     `json:"available_items"`
		FlashSaleItems   int     `json:"flash_sale_items"`
		DonatedItems     int     `json:"donated_items"`
		ClaimedItems     int     `json:"claimed_items"`
		ExpiredItems     int     `json:"expired_items"`
		RevenueGenerated float64 `json:"revenue_generated"`
	}
)
