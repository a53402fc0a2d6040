package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/pkg/demostore"
	"replate-backend/pkg/query"
)

func newTestService(t *testing.T) (AnalyticsService, time.Time) {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := demostore.New(demostore.WithClock(func() time.Time { return now }))
	return NewAnalyticsService(store, query.NewClient(store)), now
}

func TestGetCanteenAnalytics(t *testing.T) {
	svc, _ := newTestService(t)

	snapshots, err := svc.GetCanteenAnalytics(context.Background(), "canteen-1", "")
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	// newest first
	assert.Equal(t, 45, snapshots[0].TotalFoodLogged)
	assert.Equal(t, float64(2340), snapshots[0].RevenueGenerated)
	assert.True(t, snapshots[0].Date > snapshots[1].Date)
	assert.True(t, snapshots[1].Date > snapshots[2].Date)
}

func TestGetCanteenAnalyticsSinceBound(t *testing.T) {
	svc, now := newTestService(t)

	since := now.AddDate(0, 0, -1).Format("2006-01-02")
	snapshots, err := svc.GetCanteenAnalytics(context.Background(), "canteen-1", since)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	for _, snap := range snapshots {
		assert.GreaterOrEqual(t, snap.Date, since)
	}
}

func TestGetCanteenAnalyticsUnknownCanteen(t *testing.T) {
	svc, _ := newTestService(t)

	snapshots, err := svc.GetCanteenAnalytics(context.Background(), "canteen-404", "")
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestGetPlatformStats(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.GetPlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 135, stats.TotalFoodLogged)
	assert.Equal(t, 85, stats.TotalFoodSold)
	assert.Equal(t, 37, stats.TotalFoodDonated)
	assert.Equal(t, float64(7010), stats.RevenueGenerated)
	assert.Equal(t, 122, stats.MealsProvided)
	assert.Equal(t, 2, stats.ActiveCanteens)
	assert.Equal(t, 2, stats.PartnerNGOs)
	assert.Equal(t, 4, stats.LiveFoodItems)
	assert.Equal(t, 1, stats.LiveClaims)
	assert.Equal(t, 1, stats.LiveDonations)
	require.Len(t, stats.RecentActivity, 4)
	assert.Equal(t, "Chicken Biryani", stats.RecentActivity[0].ItemName)
	assert.Equal(t, "Main Campus Cafeteria", stats.RecentActivity[0].CanteenName)
}
