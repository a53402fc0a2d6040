package domain

import (
	"errors"
	"time"

	"replate-backend/entities"
)

var (
	MessageSuccessGetDonations       = "donations retrieved successfully"
	MessageSuccessGetPendingItems    = "pending donation items retrieved successfully"
	MessageSuccessSchedulePickup     = "pickup scheduled successfully"
	MessageSuccessUpdateDonation     = "donation updated successfully"

	MessageFailedGetDonations    = "failed to retrieve donations"
	MessageFailedGetPendingItems = "failed to retrieve pending donation items"
	MessageFailedSchedulePickup  = "failed to schedule pickup"
	MessageFailedUpdateDonation  = "failed to update donation"

	ErrDonationNotFound      = errors.New("donation not found")
	ErrInvalidDonationStatus = errors.New("invalid donation status transition")
	ErrInvalidPickupTime     = errors.New("invalid pickup time")
	ErrNoNGOAssigned         = errors.New("no ngo assigned to user")
	ErrItemNotDonated        = errors.New("food item is not marked for donation")
)

type (
	SchedulePickupRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required"`
		PickupTime string `json:"pickup_time" validate:"required"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	UpdateDonationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending scheduled picked_up completed"`
	}

	NGOResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		ContactPerson  string `json:"contact_person"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Address        string `json:"address"`
		CapacityPerDay int    `json:"capacity_per_day"`
	}

	DonationResponse struct {
		ID          string                  `json:"id"`
		FoodItemID  string                  `json:"food_item_id"`
		NGOID       string                  `json:"ngo_id"`
		VolunteerID string                  `json:"volunteer_id,omitempty"`
		Quantity    int                     `json:"quantity"`
		PickupTime  *time.Time              `json:"pickup_time,omitempty"`
		Status      entities.DonationStatus `json:"status"`
		Notes       string                  `json:"notes,omitempty"`
		CreatedAt   time.Time               `json:"created_at"`
		FoodItem    *FoodItemResponse       `json:"food_item,omitempty"`
		NGO         *NGOResponse            `json:"ngo,omitempty"`
	}
)
