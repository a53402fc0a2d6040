package entities

import (
	"time"
)

type FoodStatus string

const (
	FoodStatusAvailable FoodStatus = "available"
	FoodStatusFlashSale FoodStatus = "flash_sale"
	FoodStatusDonated   FoodStatus = "donated"
	FoodStatusClaimed   FoodStatus = "claimed"
	FoodStatusExpired   FoodStatus = "expired"
)

type FlashSale struct {
	DiscountPercentage float64   `json:"discount_percentage"`
	EndTime            time.Time `json:"end_time"`
	IsActive           bool      `json:"is_active"`
}

type CanteenSummary struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type FoodItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	Category        string          `json:"category"`
	Quantity        int             `json:"quantity"`
	OriginalPrice   *float64        `json:"original_price"`
	DiscountedPrice *float64        `json:"discounted_price"`
	ExpiryTime      time.Time       `json:"expiry_time"`
	Status          FoodStatus      `json:"status"`
	ImageURL        *string         `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
	CanteenID       string          `json:"canteen_id"`
	StaffID         string          `json:"staff_id"`
	Canteen         *CanteenSummary `json:"canteens,omitempty"`
	FlashSales      []FlashSale     `json:"flash_sales,omitempty"`
}

// EffectiveStatus derives "expired" at read time. The stored status is never
// swept; an item still listed past its expiry time reads as expired.
func (f *FoodItem) EffectiveStatus(now time.Time) FoodStatus {
	switch f.Status {
	case FoodStatusAvailable, FoodStatusFlashSale, FoodStatusDonated:
		if now.After(f.ExpiryTime) {
			return FoodStatusExpired
		}
	}
	return f.Status
}

// UnitPrice is the price a claim pays per unit: the discounted price when a
// flash sale set one, the original price otherwise, zero when neither exists.
func (f *FoodItem) UnitPrice() float64 {
	if f.DiscountedPrice != nil {
		return *f.DiscountedPrice
	}
	if f.OriginalPrice != nil {
		return *f.OriginalPrice
	}
	return 0
}

// Clone returns a deep copy so callers never observe the store's live record.
func (f FoodItem) Clone() FoodItem {
	out := f
	out.Description = clonePtr(f.Description)
	out.OriginalPrice = clonePtr(f.OriginalPrice)
	out.DiscountedPrice = clonePtr(f.DiscountedPrice)
	out.ImageURL = clonePtr(f.ImageURL)
	if f.Canteen != nil {
		c := *f.Canteen
		out.Canteen = &c
	}
	if f.FlashSales != nil {
		out.FlashSales = make([]FlashSale, len(f.FlashSales))
		copy(out.FlashSales, f.FlashSales)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
