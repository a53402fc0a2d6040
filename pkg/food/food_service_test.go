package food

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
)

func newTestService(t *testing.T) (FoodService, *demostore.Store, time.Time) {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := demostore.New(demostore.WithClock(func() time.Time { return now }))
	return NewFoodService(store), store, now
}

func TestAddFoodItem(t *testing.T) {
	svc, _, now := newTestService(t)

	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:          "Pasta Bowls",
		Description:   "Creamy pesto pasta",
		Category:      "Main Course",
		Quantity:      10,
		OriginalPrice: floatPtr(90),
		ExpiryTime:    now.Add(3 * time.Hour).Format(time.RFC3339),
	}, "staff-1")
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "canteen-1", res.CanteenID)
	assert.Equal(t, "Main Campus Cafeteria", res.CanteenName)
	assert.Equal(t, entities.FoodStatusAvailable, res.Status)
}

func floatPtr(f float64) *float64 { return &f }

func TestAddFoodItemValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Bad Expiry",
		Category:   "Snacks",
		Quantity:   5,
		ExpiryTime: "tomorrow-ish",
	}, "staff-1")
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryTime)

	// students have no canteen assigned
	_, err = svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Orphan Item",
		Category:   "Snacks",
		Quantity:   5,
		ExpiryTime: time.Now().Add(time.Hour).Format(time.RFC3339),
	}, "student-1")
	assert.ErrorIs(t, err, domain.ErrNoCanteenAssigned)
}

func TestUpdateFoodItemStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.UpdateFoodItem(context.Background(), "food-2", domain.UpdateFoodItemRequest{
		Status: "donated",
	}, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, entities.FoodStatusDonated, res.Status)
	assert.Equal(t, "Vegetable Sandwiches", res.Name)
	assert.Equal(t, 25, res.Quantity)
}

func TestUpdateFoodItemOwnership(t *testing.T) {
	svc, store, now := newTestService(t)

	created := store.AddFoodItem(entities.FoodItem{
		Name:       "Eng Block Special",
		Category:   "Main Course",
		Quantity:   4,
		ExpiryTime: now.Add(time.Hour),
		CanteenID:  "canteen-2",
	})

	_, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		Status: "donated",
	}, "staff-1")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetFoodItemsFilters(t *testing.T) {
	svc, _, _ := newTestService(t)

	all, err := svc.GetFoodItems(context.Background(), "canteen-1", "all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	flashOnly, err := svc.GetFoodItems(context.Background(), "canteen-1", "flash_sale")
	require.NoError(t, err)
	assert.Len(t, flashOnly, 2)

	none, err := svc.GetFoodItems(context.Background(), "canteen-2", "all")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetFoodItemsDerivesExpired(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	current := now
	store := demostore.New(demostore.WithClock(func() time.Time { return current }))
	svc := NewFoodService(store)

	// past every seeded expiry
	current = now.Add(5 * time.Hour)
	expired, err := svc.GetFoodItems(context.Background(), "canteen-1", "expired")
	require.NoError(t, err)
	assert.Len(t, expired, 4)
}

func TestCreateFlashSaleService(t *testing.T) {
	svc, _, now := newTestService(t)

	res, err := svc.CreateFlashSale(context.Background(), "food-2", domain.CreateFlashSaleRequest{
		DiscountPercent: 30,
		DurationMinutes: 45,
	}, "staff-1")
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusFlashSale, res.Status)
	require.NotNil(t, res.DiscountedPrice)
	assert.InDelta(t, 31.5, *res.DiscountedPrice, 0.001)
	require.NotNil(t, res.FlashSale)
	assert.Equal(t, now.Add(45*time.Minute), res.FlashSale.EndTime)
	assert.True(t, res.FlashSale.IsActive)
}

func TestMarkDonated(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.MarkDonated(context.Background(), "food-2", "staff-1")
	require.NoError(t, err)
	assert.Equal(t, entities.FoodStatusDonated, res.Status)
}

func TestGetDashboardStats(t *testing.T) {
	svc, _, _ := newTestService(t)

	stats, err := svc.GetDashboardStats(context.Background(), "canteen-1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.AvailableItems)
	assert.Equal(t, 2, stats.FlashSaleItems)
	assert.Equal(t, 1, stats.DonatedItems)
	assert.Equal(t, 0, stats.ClaimedItems)
	// claim-1 paid 144 against food-1
	assert.Equal(t, float64(144), stats.RevenueGenerated)
}
