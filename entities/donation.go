package entities

import (
	"time"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusScheduled DonationStatus = "scheduled"
	DonationStatusPickedUp  DonationStatus = "picked_up"
	DonationStatusCompleted DonationStatus = "completed"
)

// donationStatusRank orders the lifecycle; a donation only ever advances.
var donationStatusRank = map[DonationStatus]int{
	DonationStatusPending:   0,
	DonationStatusScheduled: 1,
	DonationStatusPickedUp:  2,
	DonationStatusCompleted: 3,
}

// CanAdvanceTo reports whether moving to next is a forward transition.
func (s DonationStatus) CanAdvanceTo(next DonationStatus) bool {
	cur, ok := donationStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := donationStatusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

type Donation struct {
	ID          string         `json:"id"`
	FoodItemID  string         `json:"food_item_id"`
	NGOID       string         `json:"ngo_id"`
	VolunteerID *string        `json:"volunteer_id"`
	Quantity    int            `json:"quantity"`
	PickupTime  *time.Time     `json:"pickup_time"`
	Status      DonationStatus `json:"status"`
	Notes       *string        `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	FoodItem    *FoodItem      `json:"food_item,omitempty"`
	NGO         *NGO           `json:"ngo,omitempty"`
}

func (d Donation) Clone() Donation {
	out := d
	out.VolunteerID = clonePtr(d.VolunteerID)
	out.PickupTime = clonePtr(d.PickupTime)
	out.Notes = clonePtr(d.Notes)
	if d.FoodItem != nil {
		item := d.FoodItem.Clone()
		out.FoodItem = &item
	}
	if d.NGO != nil {
		ngo := *d.NGO
		out.NGO = &ngo
	}
	return out
}
