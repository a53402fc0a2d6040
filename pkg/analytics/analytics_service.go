package analytics

import (
	"context"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/query"
)

type (
	AnalyticsService interface {
		GetCanteenAnalytics(ctx context.Context, canteenID string, since string) ([]domain.AnalyticsResponse, error)
		GetPlatformStats(ctx context.Context) (domain.PlatformStatsResponse, error)
	}

	analyticsService struct {
		store  *demostore.Store
		client *query.Client
	}
)

func NewAnalyticsService(store *demostore.Store, client *query.Client) AnalyticsService {
	return &analyticsService{store: store, client: client}
}

func snapshotResponse(snap entities.AnalyticsSnapshot) domain.AnalyticsResponse {
	return domain.AnalyticsResponse{
		TotalFoodLogged:  snap.TotalFoodLogged,
		TotalFoodSold:    snap.TotalFoodSold,
		TotalFoodDonated: snap.TotalFoodDonated,
		RevenueGenerated: snap.RevenueGenerated,
		MealsProvided:    snap.MealsProvided,
		Date:             snap.Date,
		CanteenID:        snap.CanteenID,
	}
}

// GetCanteenAnalytics reads through the query client the dashboards use:
// filtered by canteen, optionally bounded below by date.
func (s *analyticsService) GetCanteenAnalytics(ctx context.Context, canteenID string, since string) ([]domain.AnalyticsResponse, error) {
	var res query.Result
	if since != "" {
		res = s.client.From("analytics").Select().Gte("date", since).Order("date", true)
	} else {
		res = s.client.From("analytics").Select().Eq("canteen_id", canteenID).Order("date", true)
	}
	if res.Error != nil {
		return nil, res.Error
	}

	snapshots, _ := res.Data.([]entities.AnalyticsSnapshot)
	response := make([]domain.AnalyticsResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		if canteenID != "" && snap.CanteenID != canteenID {
			continue
		}
		response = append(response, snapshotResponse(snap))
	}
	return response, nil
}

// GetPlatformStats aggregates the seeded snapshots with live store counters
// for the admin dashboard, plus a short recent-activity feed.
func (s *analyticsService) GetPlatformStats(ctx context.Context) (domain.PlatformStatsResponse, error) {
	stats := domain.PlatformStatsResponse{
		ActiveCanteens: len(s.store.Canteens()),
		PartnerNGOs:    len(s.store.NGOs()),
	}

	for _, snap := range s.store.Analytics() {
		stats.TotalFoodLogged += snap.TotalFoodLogged
		stats.TotalFoodSold += snap.TotalFoodSold
		stats.TotalFoodDonated += snap.TotalFoodDonated
		stats.RevenueGenerated += snap.RevenueGenerated
		stats.MealsProvided += snap.MealsProvided
	}

	now := s.store.Now()
	items := s.store.FoodItems()
	stats.LiveFoodItems = len(items)
	stats.LiveClaims = len(s.store.Claims())
	stats.LiveDonations = len(s.store.Donations())

	const activityLimit = 10
	for _, item := range items {
		if len(stats.RecentActivity) == activityLimit {
			break
		}
		entry := domain.ActivityEntry{
			ItemID:   item.ID,
			ItemName: item.Name,
			Status:   string(item.EffectiveStatus(now)),
		}
		if item.Canteen != nil {
			entry.CanteenName = item.Canteen.Name
		}
		stats.RecentActivity = append(stats.RecentActivity, entry)
	}

	return stats, nil
}
