package claim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/domain"
	"replate-backend/pkg/demostore"
)

func newTestService(t *testing.T) (ClaimService, *demostore.Store) {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := demostore.New(demostore.WithClock(func() time.Time { return now }))
	return NewClaimService(store), store
}

func TestGetActiveFlashSales(t *testing.T) {
	svc, _ := newTestService(t)

	sales, err := svc.GetActiveFlashSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)

	ids := []string{sales[0].ID, sales[1].ID}
	assert.Contains(t, ids, "food-1")
	assert.Contains(t, ids, "food-4")
	for _, sale := range sales {
		require.NotNil(t, sale.FlashSale)
		assert.True(t, sale.FlashSale.IsActive)
	}
}

func TestGetActiveFlashSalesExcludesEndedTerms(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	current := now
	store := demostore.New(demostore.WithClock(func() time.Time { return current }))
	svc := NewClaimService(store)

	// food-1's sale term and expiry both pass at +2h, food-4 runs until +3h
	current = now.Add(150 * time.Minute)
	sales, err := svc.GetActiveFlashSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "food-4", sales[0].ID)
}

func TestClaimFoodItem(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.ClaimFoodItem(context.Background(), "food-4", domain.ClaimFoodItemRequest{Quantity: 2}, "student-1")
	require.NoError(t, err)

	assert.Equal(t, "food-4", res.FoodItemID)
	assert.Equal(t, "student-1", res.StudentID)
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, float64(60), res.AmountPaid)
	assert.False(t, res.IsPickedUp)
	require.NotNil(t, res.FoodItem)
	assert.Equal(t, 10, res.FoodItem.Quantity)
}

func TestClaimFoodItemSurfacesStoreErrors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClaimFoodItem(context.Background(), "food-4", domain.ClaimFoodItemRequest{Quantity: 99}, "student-1")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.ClaimFoodItem(context.Background(), "food-404", domain.ClaimFoodItemRequest{Quantity: 1}, "student-1")
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestGetStudentClaims(t *testing.T) {
	svc, _ := newTestService(t)

	claims, err := svc.GetStudentClaims(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "claim-1", claims[0].ID)
	assert.Equal(t, float64(144), claims[0].AmountPaid)

	none, err := svc.GetStudentClaims(context.Background(), "volunteer-1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMarkPickedUp(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.MarkPickedUp(context.Background(), "claim-1", "student-1")
	require.NoError(t, err)
	assert.True(t, res.IsPickedUp)

	_, err = svc.MarkPickedUp(context.Background(), "claim-1", "student-1")
	assert.ErrorIs(t, err, domain.ErrClaimAlreadyPickedUp)
}

func TestMarkPickedUpRejectsOtherStudents(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MarkPickedUp(context.Background(), "claim-1", "student-2")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedClaimAccess)
}
