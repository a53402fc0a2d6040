package food

import (
	"context"
	"time"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, staffID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, staffID string) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, canteenID string, status string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		CreateFlashSale(ctx context.Context, id string, req domain.CreateFlashSaleRequest, staffID string) (domain.FoodItemResponse, error)
		MarkDonated(ctx context.Context, id string, staffID string) (domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context, canteenID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		store *demostore.Store
	}
)

func NewFoodService(store *demostore.Store) FoodService {
	return &foodService{store: store}
}

// ItemResponse flattens a food item for the API, deriving the expired status
// from the clock instead of the stored field.
func ItemResponse(item entities.FoodItem, now time.Time) domain.FoodItemResponse {
	res := domain.FoodItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		OriginalPrice:   item.OriginalPrice,
		DiscountedPrice: item.DiscountedPrice,
		ExpiryTime:      item.ExpiryTime,
		Status:          item.EffectiveStatus(now),
		CreatedAt:       item.CreatedAt,
		CanteenID:       item.CanteenID,
	}
	if item.Description != nil {
		res.Description = *item.Description
	}
	if item.ImageURL != nil {
		res.ImageURL = *item.ImageURL
	}
	if item.Canteen != nil {
		res.CanteenName = item.Canteen.Name
		res.CanteenLocation = item.Canteen.Location
	}
	if len(item.FlashSales) > 0 {
		sale := item.FlashSales[0]
		res.FlashSale = &domain.FlashSaleResponse{
			DiscountPercentage: sale.DiscountPercentage,
			EndTime:            sale.EndTime,
			IsActive:           sale.IsActive && now.Before(sale.EndTime),
		}
	}
	return res
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, staffID string) (domain.FoodItemResponse, error) {
	staff, err := s.store.UserByID(staffID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	if staff.CanteenID == "" {
		return domain.FoodItemResponse{}, domain.ErrNoCanteenAssigned
	}

	expiryTime, err := time.Parse(time.RFC3339, req.ExpiryTime)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryTime
	}
	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	item := entities.FoodItem{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		OriginalPrice: req.OriginalPrice,
		ExpiryTime:    expiryTime,
		Status:        entities.FoodStatusAvailable,
		CanteenID:     staff.CanteenID,
		StaffID:       staff.ID,
	}
	if req.Description != "" {
		item.Description = &req.Description
	}
	if req.ImageURL != "" {
		item.ImageURL = &req.ImageURL
	}

	created := s.store.AddFoodItem(item)
	return ItemResponse(created, s.store.Now()), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, staffID string) (domain.FoodItemResponse, error) {
	if err := s.checkOwnership(id, staffID); err != nil {
		return domain.FoodItemResponse{}, err
	}

	update := demostore.FoodItemUpdate{Quantity: req.Quantity}
	if req.Name != "" {
		update.Name = &req.Name
	}
	if req.Description != "" {
		update.Description = &req.Description
	}
	if req.Category != "" {
		update.Category = &req.Category
	}
	if req.ExpiryTime != "" {
		expiryTime, err := time.Parse(time.RFC3339, req.ExpiryTime)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryTime
		}
		update.ExpiryTime = &expiryTime
	}
	if req.Status != "" {
		status := entities.FoodStatus(req.Status)
		update.Status = &status
	}

	item, err := s.store.UpdateFoodItem(id, update)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ItemResponse(item, s.store.Now()), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, canteenID string, status string) ([]domain.FoodItemResponse, error) {
	now := s.store.Now()
	response := make([]domain.FoodItemResponse, 0)
	for _, item := range s.store.FoodItems() {
		if canteenID != "" && item.CanteenID != canteenID {
			continue
		}
		res := ItemResponse(item, now)
		if status != "" && status != "all" && string(res.Status) != status {
			continue
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	item, err := s.store.FoodItemByID(id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ItemResponse(item, s.store.Now()), nil
}

func (s *foodService) CreateFlashSale(ctx context.Context, id string, req domain.CreateFlashSaleRequest, staffID string) (domain.FoodItemResponse, error) {
	if err := s.checkOwnership(id, staffID); err != nil {
		return domain.FoodItemResponse{}, err
	}

	item, err := s.store.CreateFlashSale(id, req.DiscountPercent, time.Duration(req.DurationMinutes)*time.Minute)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ItemResponse(item, s.store.Now()), nil
}

func (s *foodService) MarkDonated(ctx context.Context, id string, staffID string) (domain.FoodItemResponse, error) {
	if err := s.checkOwnership(id, staffID); err != nil {
		return domain.FoodItemResponse{}, err
	}

	status := entities.FoodStatusDonated
	item, err := s.store.UpdateFoodItem(id, demostore.FoodItemUpdate{Status: &status})
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ItemResponse(item, s.store.Now()), nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, canteenID string) (domain.DashboardStatsResponse, error) {
	now := s.store.Now()
	stats := domain.DashboardStatsResponse{}

	itemIDs := make(map[string]bool)
	for _, item := range s.store.FoodItems() {
		if item.CanteenID != canteenID {
			continue
		}
		itemIDs[item.ID] = true
		stats.TotalItems++
		switch item.EffectiveStatus(now) {
		case entities.FoodStatusAvailable:
			stats.AvailableItems++
		case entities.FoodStatusFlashSale:
			stats.FlashSaleItems++
		case entities.FoodStatusDonated:
			stats.DonatedItems++
		case entities.FoodStatusClaimed:
			stats.ClaimedItems++
		case entities.FoodStatusExpired:
			stats.ExpiredItems++
		}
	}

	for _, claim := range s.store.Claims() {
		if itemIDs[claim.FoodItemID] {
			stats.RevenueGenerated += claim.AmountPaid
		}
	}

	return stats, nil
}

// checkOwnership rejects mutations on items belonging to another canteen.
func (s *foodService) checkOwnership(itemID, staffID string) error {
	staff, err := s.store.UserByID(staffID)
	if err != nil {
		return err
	}
	item, err := s.store.FoodItemByID(itemID)
	if err != nil {
		return err
	}
	if staff.Role != entities.RoleAdmin && item.CanteenID != staff.CanteenID {
		return domain.ErrUserNotAllowed
	}
	return nil
}
