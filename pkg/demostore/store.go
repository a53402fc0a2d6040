package demostore

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"replate-backend/domain"
	"replate-backend/entities"
)

// Store holds every entity collection of the demo in memory. It is seeded
// once at construction and guarded by a single mutex, since the HTTP surface
// may mutate it from concurrent requests. All accessors hand out copies;
// callers never see the live records.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	canteens  []entities.Canteen
	ngos      []entities.NGO
	analytics []entities.AnalyticsSnapshot
	foodItems []entities.FoodItem
	donations []entities.Donation
	claims    []entities.Claim
	users     []entities.User
}

type Option func(*Store)

// WithClock replaces the store's time source. Tests use this to pin expiry
// and flash-sale end times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

func (s *Store) Now() time.Time {
	return s.now()
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

// ---- read accessors ----

func (s *Store) FoodItems() []entities.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.FoodItem, 0, len(s.foodItems))
	for _, item := range s.foodItems {
		out = append(out, item.Clone())
	}
	return out
}

func (s *Store) FoodItemByID(id string) (entities.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.findFoodItem(id)
	if idx == -1 {
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}
	return s.foodItems[idx].Clone(), nil
}

func (s *Store) Canteens() []entities.Canteen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Canteen, 0, len(s.canteens))
	for _, c := range s.canteens {
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) CanteenByID(id string) (entities.Canteen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.canteens {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return entities.Canteen{}, domain.ErrCanteenNotFound
}

func (s *Store) NGOs() []entities.NGO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.NGO, len(s.ngos))
	copy(out, s.ngos)
	return out
}

func (s *Store) NGOByID(id string) (entities.NGO, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ngo := range s.ngos {
		if ngo.ID == id {
			return ngo, true
		}
	}
	return entities.NGO{}, false
}

func (s *Store) Analytics() []entities.AnalyticsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.AnalyticsSnapshot, len(s.analytics))
	copy(out, s.analytics)
	return out
}

func (s *Store) Donations() []entities.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Donation, 0, len(s.donations))
	for _, d := range s.donations {
		out = append(out, s.joinDonation(d))
	}
	return out
}

func (s *Store) DonationByID(id string) (entities.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.donations {
		if d.ID == id {
			return s.joinDonation(d), nil
		}
	}
	return entities.Donation{}, domain.ErrDonationNotFound
}

func (s *Store) Claims() []entities.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		out = append(out, s.joinClaim(c))
	}
	return out
}

func (s *Store) UserByEmail(email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, domain.ErrUserNotFound
}

func (s *Store) UserByID(id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.User{}, domain.ErrUserNotFound
}

// ---- mutations ----

// FoodItemUpdate carries a partial update; nil fields are left untouched.
type FoodItemUpdate struct {
	Name            *string
	Description     *string
	Category        *string
	Quantity        *int
	OriginalPrice   *float64
	DiscountedPrice *float64
	ExpiryTime      *time.Time
	Status          *entities.FoodStatus
	ImageURL        *string
}

// AddFoodItem assigns an id and creation time, resolves the owning canteen
// summary and prepends the item, so listings come back newest first.
func (s *Store) AddFoodItem(item entities.FoodItem) entities.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = newID("food")
	item.CreatedAt = s.now()
	if item.Status == "" {
		item.Status = entities.FoodStatusAvailable
	}
	for _, c := range s.canteens {
		if c.ID == item.CanteenID {
			item.Canteen = &entities.CanteenSummary{Name: c.Name, Location: c.Location}
			break
		}
	}

	s.foodItems = append([]entities.FoodItem{item}, s.foodItems...)
	return item.Clone()
}

func (s *Store) UpdateFoodItem(id string, update FoodItemUpdate) (entities.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findFoodItem(id)
	if idx == -1 {
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}

	item := &s.foodItems[idx]
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = update.Description
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	if update.OriginalPrice != nil {
		item.OriginalPrice = update.OriginalPrice
	}
	if update.DiscountedPrice != nil {
		item.DiscountedPrice = update.DiscountedPrice
	}
	if update.ExpiryTime != nil {
		item.ExpiryTime = *update.ExpiryTime
	}
	if update.Status != nil {
		item.Status = *update.Status
	}
	if update.ImageURL != nil {
		item.ImageURL = update.ImageURL
	}

	return item.Clone(), nil
}

// CreateFlashSale puts the item on flash sale: status flips, the discounted
// price is derived from the original price, and any previous sale term is
// replaced by a single active one ending now+duration.
func (s *Store) CreateFlashSale(id string, discountPercent float64, duration time.Duration) (entities.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if discountPercent <= 0 || discountPercent > 100 {
		return entities.FoodItem{}, domain.ErrInvalidDiscount
	}

	idx := s.findFoodItem(id)
	if idx == -1 {
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}

	item := &s.foodItems[idx]
	now := s.now()
	switch item.EffectiveStatus(now) {
	case entities.FoodStatusClaimed:
		return entities.FoodItem{}, domain.ErrAlreadyClaimed
	case entities.FoodStatusExpired:
		return entities.FoodItem{}, domain.ErrFoodItemExpired
	}

	item.Status = entities.FoodStatusFlashSale
	if item.OriginalPrice != nil {
		discounted := *item.OriginalPrice * (100 - discountPercent) / 100
		item.DiscountedPrice = &discounted
	} else {
		item.DiscountedPrice = nil
	}
	item.FlashSales = []entities.FlashSale{{
		DiscountPercentage: discountPercent,
		EndTime:            now.Add(duration),
		IsActive:           true,
	}}

	return item.Clone(), nil
}

// ClaimFoodItem records a claim and decrements the item's stock. The claim
// pays quantity times the effective unit price. Once the quantity reaches
// zero the item reads as claimed. Claims beyond the available quantity, or
// against claimed or expired items, are rejected.
func (s *Store) ClaimFoodItem(itemID, studentID string, quantity int) (entities.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return entities.Claim{}, domain.ErrInvalidQuantity
	}

	idx := s.findFoodItem(itemID)
	if idx == -1 {
		return entities.Claim{}, domain.ErrFoodItemNotFound
	}

	item := &s.foodItems[idx]
	now := s.now()
	switch item.EffectiveStatus(now) {
	case entities.FoodStatusClaimed:
		return entities.Claim{}, domain.ErrAlreadyClaimed
	case entities.FoodStatusExpired:
		return entities.Claim{}, domain.ErrFoodItemExpired
	}
	if quantity > item.Quantity {
		return entities.Claim{}, domain.ErrInvalidQuantity
	}

	claim := entities.Claim{
		ID:         newID("claim"),
		FoodItemID: itemID,
		StudentID:  studentID,
		Quantity:   quantity,
		AmountPaid: float64(quantity) * item.UnitPrice(),
		ClaimTime:  now,
	}
	s.claims = append(s.claims, claim)

	item.Quantity -= quantity
	if item.Quantity <= 0 {
		item.Status = entities.FoodStatusClaimed
	}

	return s.joinClaim(claim), nil
}

func (s *Store) MarkClaimPickedUp(id string) (entities.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.claims {
		if s.claims[i].ID != id {
			continue
		}
		if s.claims[i].IsPickedUp {
			return entities.Claim{}, domain.ErrClaimAlreadyPickedUp
		}
		now := s.now()
		s.claims[i].PickupTime = &now
		s.claims[i].IsPickedUp = true
		return s.joinClaim(s.claims[i]), nil
	}
	return entities.Claim{}, domain.ErrClaimNotFound
}

func (s *Store) AddDonation(d entities.Donation) entities.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = newID("donation")
	d.CreatedAt = s.now()
	if d.Status == "" {
		d.Status = entities.DonationStatusPending
	}
	s.donations = append(s.donations, d)
	return s.joinDonation(d)
}

// UpdateDonationStatus advances a donation's lifecycle. The status only ever
// moves forward; regressions and repeats are rejected.
func (s *Store) UpdateDonationStatus(id string, status entities.DonationStatus) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.donations {
		if s.donations[i].ID != id {
			continue
		}
		if !s.donations[i].Status.CanAdvanceTo(status) {
			return entities.Donation{}, domain.ErrInvalidDonationStatus
		}
		s.donations[i].Status = status
		return s.joinDonation(s.donations[i]), nil
	}
	return entities.Donation{}, domain.ErrDonationNotFound
}

// ---- internal helpers, caller must hold the lock ----

func (s *Store) findFoodItem(id string) int {
	for i := range s.foodItems {
		if s.foodItems[i].ID == id {
			return i
		}
	}
	return -1
}

// joinDonation resolves the food item and NGO references at read time, so
// callers always see the current state rather than a creation-time snapshot.
func (s *Store) joinDonation(d entities.Donation) entities.Donation {
	out := d.Clone()
	if idx := s.findFoodItem(d.FoodItemID); idx != -1 {
		item := s.foodItems[idx].Clone()
		out.FoodItem = &item
	}
	for _, ngo := range s.ngos {
		if ngo.ID == d.NGOID {
			n := ngo
			out.NGO = &n
			break
		}
	}
	return out
}

func (s *Store) joinClaim(c entities.Claim) entities.Claim {
	out := c.Clone()
	if idx := s.findFoodItem(c.FoodItemID); idx != -1 {
		item := s.foodItems[idx].Clone()
		out.FoodItem = &item
	}
	return out
}
