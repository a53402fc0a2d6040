package entities

import (
	"time"
)

type Claim struct {
	ID         string     `json:"id"`
	FoodItemID string     `json:"food_item_id"`
	StudentID  string     `json:"student_id"`
	Quantity   int        `json:"quantity"`
	AmountPaid float64    `json:"amount_paid"`
	ClaimTime  time.Time  `json:"claim_time"`
	PickupTime *time.Time `json:"pickup_time"`
	IsPickedUp bool       `json:"is_picked_up"`
	FoodItem   *FoodItem  `json:"food_item,omitempty"`
}

func (c Claim) Clone() Claim {
	out := c
	out.PickupTime = clonePtr(c.PickupTime)
	if c.FoodItem != nil {
		item := c.FoodItem.Clone()
		out.FoodItem = &item
	}
	return out
}
