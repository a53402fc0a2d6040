package demostore

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"replate-backend/entities"
)

// DemoPassword is the password every seeded account accepts.
const DemoPassword = "demo"

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func timePtr(t time.Time) *time.Time { return &t }

// seed populates the store with the fixed demo data set: two canteens, two
// NGOs, four food items, three daily analytics snapshots, one scheduled
// donation, one claim and one demo account per role. Timestamps are relative
// to the store clock so the data always looks fresh.
func (s *Store) seed() {
	now := s.now()

	s.canteens = []entities.Canteen{
		{
			ID:           "canteen-1",
			Name:         "Main Campus Cafeteria",
			Location:     "Building A, Ground Floor",
			ContactEmail: "main.cafeteria@college.edu",
			ContactPhone: "+1-555-0101",
			OperatingHours: map[string]string{
				"monday":    "7:00-22:00",
				"tuesday":   "7:00-22:00",
				"wednesday": "7:00-22:00",
				"thursday":  "7:00-22:00",
				"friday":    "7:00-22:00",
				"saturday":  "8:00-20:00",
				"sunday":    "8:00-20:00",
			},
		},
		{
			ID:           "canteen-2",
			Name:         "Engineering Block Canteen",
			Location:     "Engineering Building, 2nd Floor",
			ContactEmail: "eng.canteen@college.edu",
			ContactPhone: "+1-555-0102",
			OperatingHours: map[string]string{
				"monday":    "8:00-18:00",
				"tuesday":   "8:00-18:00",
				"wednesday": "8:00-18:00",
				"thursday":  "8:00-18:00",
				"friday":    "8:00-18:00",
				"saturday":  "9:00-17:00",
				"sunday":    "closed",
			},
		},
	}

	s.ngos = []entities.NGO{
		{
			ID:             "ngo-1",
			Name:           "City Food Bank",
			ContactPerson:  "Sarah Johnson",
			Email:          "sarah@cityfoodbank.org",
			Phone:          "+1-555-0201",
			Address:        "123 Charity Street, Downtown",
			CapacityPerDay: 500,
		},
		{
			ID:             "ngo-2",
			Name:           "Helping Hands Foundation",
			ContactPerson:  "Michael Chen",
			Email:          "michael@helpinghands.org",
			Phone:          "+1-555-0202",
			Address:        "456 Community Ave, Midtown",
			CapacityPerDay: 300,
		},
	}

	mainCafeteria := &entities.CanteenSummary{
		Name:     "Main Campus Cafeteria",
		Location: "Building A, Ground Floor",
	}

	s.foodItems = []entities.FoodItem{
		{
			ID:              "food-1",
			Name:            "Chicken Biryani",
			Description:     strPtr("Aromatic basmati rice with spiced chicken"),
			Category:        "Main Course",
			Quantity:        15,
			OriginalPrice:   floatPtr(120),
			DiscountedPrice: floatPtr(72),
			ExpiryTime:      now.Add(2 * time.Hour),
			Status:          entities.FoodStatusFlashSale,
			ImageURL:        strPtr("/chicken-biryani.png"),
			CreatedAt:       now,
			CanteenID:       "canteen-1",
			StaffID:         "staff-1",
			Canteen:         mainCafeteria,
			FlashSales: []entities.FlashSale{
				{DiscountPercentage: 40, EndTime: now.Add(2 * time.Hour), IsActive: true},
			},
		},
		{
			ID:            "food-2",
			Name:          "Vegetable Sandwiches",
			Description:   strPtr("Fresh vegetables with whole wheat bread"),
			Category:      "Snacks",
			Quantity:      25,
			OriginalPrice: floatPtr(45),
			ExpiryTime:    now.Add(4 * time.Hour),
			Status:        entities.FoodStatusAvailable,
			ImageURL:      strPtr("/fresh-healthy-sandwiches.png"),
			CreatedAt:     now.Add(-30 * time.Minute),
			CanteenID:     "canteen-1",
			StaffID:       "staff-1",
			Canteen:       mainCafeteria,
		},
		{
			ID:            "food-3",
			Name:          "Masala Dosa",
			Description:   strPtr("Crispy South Indian crepe with spiced potato filling"),
			Category:      "Main Course",
			Quantity:      8,
			OriginalPrice: floatPtr(80),
			ExpiryTime:    now.Add(1 * time.Hour),
			Status:        entities.FoodStatusDonated,
			ImageURL:      strPtr("/masala-dosa.png"),
			CreatedAt:     now.Add(-1 * time.Hour),
			CanteenID:     "canteen-1",
			StaffID:       "staff-1",
			Canteen:       mainCafeteria,
		},
		{
			ID:              "food-4",
			Name:            "Fresh Fruit Smoothies",
			Description:     strPtr("Mixed berry and mango smoothies"),
			Category:        "Beverages",
			Quantity:        12,
			OriginalPrice:   floatPtr(60),
			DiscountedPrice: floatPtr(30),
			ExpiryTime:      now.Add(3 * time.Hour),
			Status:          entities.FoodStatusFlashSale,
			ImageURL:        strPtr("/colorful-fruit-smoothies.png"),
			CreatedAt:       now.Add(-15 * time.Minute),
			CanteenID:       "canteen-1",
			StaffID:         "staff-1",
			Canteen:         mainCafeteria,
			FlashSales: []entities.FlashSale{
				{DiscountPercentage: 50, EndTime: now.Add(3 * time.Hour), IsActive: true},
			},
		},
	}

	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	s.analytics = []entities.AnalyticsSnapshot{
		{TotalFoodLogged: 45, TotalFoodSold: 28, TotalFoodDonated: 12, RevenueGenerated: 2340, MealsProvided: 40, Date: day(0), CanteenID: "canteen-1"},
		{TotalFoodLogged: 38, TotalFoodSold: 22, TotalFoodDonated: 10, RevenueGenerated: 1890, MealsProvided: 32, Date: day(-1), CanteenID: "canteen-1"},
		{TotalFoodLogged: 52, TotalFoodSold: 35, TotalFoodDonated: 15, RevenueGenerated: 2780, MealsProvided: 50, Date: day(-2), CanteenID: "canteen-1"},
	}

	s.donations = []entities.Donation{
		{
			ID:          "donation-1",
			FoodItemID:  "food-3",
			NGOID:       "ngo-1",
			VolunteerID: strPtr("volunteer-1"),
			Quantity:    8,
			PickupTime:  timePtr(now.Add(2 * time.Hour)),
			Status:      entities.DonationStatusScheduled,
			Notes:       strPtr("Pickup scheduled for 2 PM"),
			CreatedAt:   now.Add(-1 * time.Hour),
		},
	}

	s.claims = []entities.Claim{
		{
			ID:         "claim-1",
			FoodItemID: "food-1",
			StudentID:  "student-1",
			Quantity:   2,
			AmountPaid: 144,
			ClaimTime:  now.Add(-30 * time.Minute),
		},
	}

	// bcrypt.MinCost keeps seeding fast; this is demo data, not a credential
	// store.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.users = []entities.User{
		{ID: "staff-1", Email: "staff@replate.com", Name: "Sarah Johnson", Role: entities.RoleStaff, CanteenID: "canteen-1", PasswordHash: hash},
		{ID: "student-1", Email: "student@replate.com", Name: "Alex Chen", Role: entities.RoleStudent, PasswordHash: hash},
		{ID: "volunteer-1", Email: "volunteer@replate.com", Name: "Maria Rodriguez", Role: entities.RoleVolunteer, NGOID: "ngo-1", PasswordHash: hash},
		{ID: "admin-1", Email: "admin@replate.com", Name: "David Kim", Role: entities.RoleAdmin, PasswordHash: hash},
	}
}
