package claim

import (
	"context"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/food"
)

type (
	ClaimService interface {
		ClaimFoodItem(ctx context.Context, itemID string, req domain.ClaimFoodItemRequest, studentID string) (domain.ClaimResponse, error)
		GetStudentClaims(ctx context.Context, studentID string) ([]domain.ClaimResponse, error)
		GetActiveFlashSales(ctx context.Context) ([]domain.FoodItemResponse, error)
		MarkPickedUp(ctx context.Context, claimID string, studentID string) (domain.ClaimResponse, error)
	}

	claimService struct {
		store *demostore.Store
	}
)

func NewClaimService(store *demostore.Store) ClaimService {
	return &claimService{store: store}
}

func claimResponse(c entities.Claim, s *demostore.Store) domain.ClaimResponse {
	res := domain.ClaimResponse{
		ID:         c.ID,
		FoodItemID: c.FoodItemID,
		StudentID:  c.StudentID,
		Quantity:   c.Quantity,
		AmountPaid: c.AmountPaid,
		ClaimTime:  c.ClaimTime,
		PickupTime: c.PickupTime,
		IsPickedUp: c.IsPickedUp,
	}
	if c.FoodItem != nil {
		item := food.ItemResponse(*c.FoodItem, s.Now())
		res.FoodItem = &item
	}
	return res
}

func (s *claimService) ClaimFoodItem(ctx context.Context, itemID string, req domain.ClaimFoodItemRequest, studentID string) (domain.ClaimResponse, error) {
	claim, err := s.store.ClaimFoodItem(itemID, studentID, req.Quantity)
	if err != nil {
		return domain.ClaimResponse{}, err
	}
	return claimResponse(claim, s.store), nil
}

func (s *claimService) GetStudentClaims(ctx context.Context, studentID string) ([]domain.ClaimResponse, error) {
	response := make([]domain.ClaimResponse, 0)
	for _, c := range s.store.Claims() {
		if c.StudentID == studentID {
			response = append(response, claimResponse(c, s.store))
		}
	}
	return response, nil
}

// GetActiveFlashSales lists what the student marketplace shows: flash-sale
// items with stock left, an active sale term and time before expiry.
func (s *claimService) GetActiveFlashSales(ctx context.Context) ([]domain.FoodItemResponse, error) {
	now := s.store.Now()
	response := make([]domain.FoodItemResponse, 0)
	for _, item := range s.store.FoodItems() {
		if item.EffectiveStatus(now) != entities.FoodStatusFlashSale || item.Quantity <= 0 {
			continue
		}
		res := food.ItemResponse(item, now)
		if res.FlashSale == nil || !res.FlashSale.IsActive {
			continue
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *claimService) MarkPickedUp(ctx context.Context, claimID string, studentID string) (domain.ClaimResponse, error) {
	for _, c := range s.store.Claims() {
		if c.ID == claimID && c.StudentID != studentID {
			return domain.ClaimResponse{}, domain.ErrUnauthorizedClaimAccess
		}
	}

	claim, err := s.store.MarkClaimPickedUp(claimID)
	if err != nil {
		return domain.ClaimResponse{}, err
	}
	return claimResponse(claim, s.store), nil
}
