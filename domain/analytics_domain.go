package domain

import (
	"errors"
)

var (
	MessageSuccessGetAnalytics     = "analytics retrieved successfully"
	MessageSuccessGetPlatformStats = "platform statistics retrieved successfully"

	MessageFailedGetAnalytics     = "failed to retrieve analytics"
	MessageFailedGetPlatformStats = "failed to retrieve platform statistics"

	ErrAnalyticsNotFound = errors.New("analytics not found")
)

type (
	AnalyticsResponse struct {
		TotalFoodLogged  int     `json:"total_food_logged"`
		TotalFoodSold    int     `json:"total_food_sold"`
		TotalFoodDonated int     `json:"total_food_donated"`
		RevenueGenerated float64 `json:"revenue_generated"`
		MealsProvided    int     `json:"meals_provided"`
		Date             string  `json:"date"`
		CanteenID        string  `json:"canteen_id"`
	}

	ActivityEntry struct {
		ItemID      string `json:"item_id"`
		ItemName    string `json:"item_name"`
		Status      string `json:"status"`
		CanteenName string `json:"canteen_name,omitempty"`
	}

	PlatformStatsResponse struct {
		TotalFoodLogged  int             `json:"total_food_logged"`
		TotalFoodSold    int             `json:"total_food_sold"`
		TotalFoodDonated int             `json:"total_food_donated"`
		RevenueGenerated float64         `json:"revenue_generated"`
		MealsProvided    int             `json:"meals_provided"`
		ActiveCanteens   int             `json:"active_canteens"`
		PartnerNGOs      int             `json:"partner_ngos"`
		LiveFoodItems    int             `json:"live_food_items"`
		LiveClaims       int             `json:"live_claims"`
		LiveDonations    int             `json:"live_donations"`
		RecentActivity   []ActivityEntry `json:"recent_activity"`
	}
)
