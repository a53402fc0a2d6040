package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
)

func newTestClient(t *testing.T) (*Client, *demostore.Store, time.Time) {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := demostore.New(demostore.WithClock(func() time.Time { return now }))
	return NewClient(store), store, now
}

func TestSelectEqSingle(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.From("canteens").Select().Eq("id", "canteen-1").Single()
	require.NoError(t, res.Error)
	canteen, ok := res.Data.(entities.Canteen)
	require.True(t, ok)
	assert.Equal(t, "Main Campus Cafeteria", canteen.Name)

	res = client.From("analytics").Select().Eq("canteen_id", "canteen-1").Single()
	require.NoError(t, res.Error)
	snap, ok := res.Data.(entities.AnalyticsSnapshot)
	require.True(t, ok)
	assert.Equal(t, 45, snap.TotalFoodLogged)

	// misses and unknown tables resolve to nil without error
	res = client.From("canteens").Select().Eq("id", "canteen-404").Single()
	assert.NoError(t, res.Error)
	assert.Nil(t, res.Data)

	res = client.From("ngos").Select().Eq("id", "ngo-1").Single()
	assert.NoError(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestSelectEqOrder(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.From("food_items").Select().Eq("canteen_id", "canteen-1").Order("created_at", true)
	require.NoError(t, res.Error)
	items, ok := res.Data.([]entities.FoodItem)
	require.True(t, ok)
	assert.Len(t, items, 4)

	res = client.From("analytics").Select().Eq("canteen_id", "canteen-1").Order("date", true)
	require.NoError(t, res.Error)
	snaps, ok := res.Data.([]entities.AnalyticsSnapshot)
	require.True(t, ok)
	assert.Len(t, snaps, 3)

	res = client.From("claims").Select().Eq("student_id", "student-1").Order("claim_time", true)
	assert.NoError(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestSelectGteOrderAppliesBound(t *testing.T) {
	client, _, now := newTestClient(t)

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	res := client.From("analytics").Select().Gte("date", yesterday).Order("date", true)
	require.NoError(t, res.Error)
	snaps, ok := res.Data.([]entities.AnalyticsSnapshot)
	require.True(t, ok)
	require.Len(t, snaps, 2)
	for _, snap := range snaps {
		assert.GreaterOrEqual(t, snap.Date, yesterday)
	}

	res = client.From("donations").Select().Gte("created_at", yesterday).Order("created_at", true)
	assert.Nil(t, res.Data)
}

func TestSelectOrderUnfiltered(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.From("food_items").Select().Order("created_at", true)
	items, ok := res.Data.([]entities.FoodItem)
	require.True(t, ok)
	assert.Len(t, items, 4)
	assert.Equal(t, "food-1", items[0].ID)

	res = client.From("donations").Select().Order("created_at", true)
	donations, ok := res.Data.([]entities.Donation)
	require.True(t, ok)
	assert.Len(t, donations, 1)

	res = client.From("canteens").Select().Order("name", false)
	assert.Nil(t, res.Data)
}

func TestInsertSelectSingle(t *testing.T) {
	client, store, now := newTestClient(t)

	res := client.From("food_items").Insert(entities.FoodItem{
		Name:       "Veg Pulao",
		Category:   "Main Course",
		Quantity:   10,
		ExpiryTime: now.Add(2 * time.Hour),
		CanteenID:  "canteen-1",
		StaffID:    "staff-1",
	}).Select().Single()
	require.NoError(t, res.Error)

	item, ok := res.Data.(entities.FoodItem)
	require.True(t, ok)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, now, item.CreatedAt)
	require.NotNil(t, item.Canteen)

	items := store.FoodItems()
	assert.Equal(t, item.ID, items[0].ID)
}

func TestInsertOtherTableEchoes(t *testing.T) {
	client, _, _ := newTestClient(t)

	in := entities.FoodItem{Name: "passthrough"}
	res := client.From("unknown").Insert(in).Select().Single()
	require.NoError(t, res.Error)
	out, ok := res.Data.(entities.FoodItem)
	require.True(t, ok)
	assert.Equal(t, "passthrough", out.Name)
	assert.Empty(t, out.ID)
}

func TestUpdateEq(t *testing.T) {
	client, store, _ := newTestClient(t)

	status := entities.FoodStatusDonated
	res := client.From("food_items").Update(demostore.FoodItemUpdate{Status: &status}).Eq("id", "food-2")
	require.NoError(t, res.Error)

	item, err := store.FoodItemByID("food-2")
	require.NoError(t, err)
	assert.Equal(t, entities.FoodStatusDonated, item.Status)

	res = client.From("food_items").Update(demostore.FoodItemUpdate{Status: &status}).Eq("id", "food-404")
	assert.ErrorIs(t, res.Error, domain.ErrFoodItemNotFound)

	res = client.From("claims").Update(demostore.FoodItemUpdate{}).Eq("id", "claim-1")
	assert.NoError(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestRpcCreateFlashSale(t *testing.T) {
	client, store, now := newTestClient(t)

	res := client.Rpc("create_flash_sale", map[string]any{
		"item_id":          "food-2",
		"discount_percent": float64(40),
		"duration_minutes": float64(120),
	})
	require.NoError(t, res.Error)
	saleID, ok := res.Data.(string)
	require.True(t, ok)
	assert.Contains(t, saleID, "sale-")

	item, err := store.FoodItemByID("food-2")
	require.NoError(t, err)
	assert.Equal(t, entities.FoodStatusFlashSale, item.Status)
	require.NotNil(t, item.DiscountedPrice)
	assert.Equal(t, float64(27), *item.DiscountedPrice)
	require.Len(t, item.FlashSales, 1)
	assert.Equal(t, now.Add(120*time.Minute), item.FlashSales[0].EndTime)
}

func TestRpcClaimFoodItem(t *testing.T) {
	client, store, _ := newTestClient(t)

	res := client.Rpc("claim_food_item", map[string]any{
		"item_id":        "food-1",
		"student_uuid":   "student-1",
		"claim_quantity": float64(2),
	})
	require.NoError(t, res.Error)
	claimID, ok := res.Data.(string)
	require.True(t, ok)
	assert.Contains(t, claimID, "claim-")

	item, err := store.FoodItemByID("food-1")
	require.NoError(t, err)
	assert.Equal(t, 13, item.Quantity)
}

func TestRpcClaimFoodItemSurfacesErrors(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.Rpc("claim_food_item", map[string]any{
		"item_id":        "food-1",
		"student_uuid":   "student-1",
		"claim_quantity": float64(20),
	})
	assert.ErrorIs(t, res.Error, domain.ErrInvalidQuantity)
	assert.Nil(t, res.Data)
}

func TestRpcUnknownNameIsNoop(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.Rpc("truncate_everything", map[string]any{})
	assert.NoError(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestRpcIntParams(t *testing.T) {
	client, store, _ := newTestClient(t)

	// params built in Go code arrive as ints, not float64
	res := client.Rpc("create_flash_sale", map[string]any{
		"item_id":          "food-2",
		"discount_percent": 50,
		"duration_minutes": 60,
	})
	require.NoError(t, res.Error)

	item, err := store.FoodItemByID("food-2")
	require.NoError(t, err)
	require.NotNil(t, item.DiscountedPrice)
	assert.Equal(t, float64(22.5), *item.DiscountedPrice)
}
