package entities

type AnalyticsSnapshot struct {
	TotalFoodLogged  int     `json:"total_food_logged"`
	TotalFoodSold    int     `json:"total_food_sold"`
	TotalFoodDonated int     `json:"total_food_donated"`
	RevenueGenerated float64 `json:"revenue_generated"`
	MealsProvided    int     `json:"meals_provided"`
	Date             string  `json:"date"` // "2006-01-02"
	CanteenID        string  `json:"canteen_id"`
}
