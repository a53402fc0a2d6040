package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessClaimFoodItem  = "food item claimed successfully"
	MessageSuccessGetClaims      = "claims retrieved successfully"
	MessageSuccessGetFlashSales  = "flash sales retrieved successfully"
	MessageSuccessMarkPickedUp   = "claim marked as picked up"

	MessageFailedClaimFoodItem = "failed to claim food item"
	MessageFailedGetClaims     = "failed to retrieve claims"
	MessageFailedGetFlashSales = "failed to retrieve flash sales"
	MessageFailedMarkPickedUp  = "failed to mark claim as picked up"

	ErrClaimNotFound          = errors.New("claim not found")
	ErrUnauthorizedClaimAccess = errors.New("unauthorized access to claim")
	ErrClaimAlreadyPickedUp   = errors.New("claim already picked up")
)

type (
	ClaimFoodItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	ClaimResponse struct {
		ID         string            `json:"id"`
		FoodItemID string            `json:"food_item_id"`
		StudentID  string            `json:"student_id"`
		Quantity   int               `json:"quantity"`
		AmountPaid float64           `json:"amount_paid"`
		ClaimTime  time.Time         `json:"claim_time"`
		PickupTime *time.Time        `json:"pickup_time,omitempty"`
		IsPickedUp bool              `json:"is_picked_up"`
		FoodItem   *FoodItemResponse `json:"food_item,omitempty"`
	}
)
