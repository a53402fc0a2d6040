package donation

import (
	"context"
	"time"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/food"
)

type (
	DonationService interface {
		GetDonations(ctx context.Context) ([]domain.DonationResponse, error)
		GetPendingDonationItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		SchedulePickup(ctx context.Context, req domain.SchedulePickupRequest, volunteerID string) (domain.DonationResponse, error)
		UpdateDonationStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest) (domain.DonationResponse, error)
	}

	donationService struct {
		store     *demostore.Store
		demoDelay time.Duration
	}
)

// NewDonationService builds the volunteer-facing service. demoDelay mimics
// the latency of a remote scheduling call; pass 0 to disable.
func NewDonationService(store *demostore.Store, demoDelay time.Duration) DonationService {
	return &donationService{store: store, demoDelay: demoDelay}
}

func donationResponse(d entities.Donation, s *demostore.Store) domain.DonationResponse {
	res := domain.DonationResponse{
		ID:         d.ID,
		FoodItemID: d.FoodItemID,
		NGOID:      d.NGOID,
		Quantity:   d.Quantity,
		PickupTime: d.PickupTime,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
	if d.VolunteerID != nil {
		res.VolunteerID = *d.VolunteerID
	}
	if d.Notes != nil {
		res.Notes = *d.Notes
	}
	if d.FoodItem != nil {
		item := food.ItemResponse(*d.FoodItem, s.Now())
		res.FoodItem = &item
	}
	if d.NGO != nil {
		res.NGO = &domain.NGOResponse{
			ID:             d.NGO.ID,
			Name:           d.NGO.Name,
			ContactPerson:  d.NGO.ContactPerson,
			Email:          d.NGO.Email,
			Phone:          d.NGO.Phone,
			Address:        d.NGO.Address,
			CapacityPerDay: d.NGO.CapacityPerDay,
		}
	}
	return res
}

func (s *donationService) GetDonations(ctx context.Context) ([]domain.DonationResponse, error) {
	response := make([]domain.DonationResponse, 0)
	for _, d := range s.store.Donations() {
		response = append(response, donationResponse(d, s.store))
	}
	return response, nil
}

// GetPendingDonationItems lists donated food items that no donation record
// has picked up yet.
func (s *donationService) GetPendingDonationItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	scheduled := make(map[string]bool)
	for _, d := range s.store.Donations() {
		scheduled[d.FoodItemID] = true
	}

	now := s.store.Now()
	response := make([]domain.FoodItemResponse, 0)
	for _, item := range s.store.FoodItems() {
		if item.EffectiveStatus(now) != entities.FoodStatusDonated || scheduled[item.ID] {
			continue
		}
		response = append(response, food.ItemResponse(item, now))
	}
	return response, nil
}

func (s *donationService) SchedulePickup(ctx context.Context, req domain.SchedulePickupRequest, volunteerID string) (domain.DonationResponse, error) {
	volunteer, err := s.store.UserByID(volunteerID)
	if err != nil {
		return domain.DonationResponse{}, err
	}
	if volunteer.NGOID == "" {
		return domain.DonationResponse{}, domain.ErrNoNGOAssigned
	}

	item, err := s.store.FoodItemByID(req.FoodItemID)
	if err != nil {
		return domain.DonationResponse{}, err
	}
	if item.EffectiveStatus(s.store.Now()) != entities.FoodStatusDonated {
		return domain.DonationResponse{}, domain.ErrItemNotDonated
	}

	pickupTime, err := time.Parse(time.RFC3339, req.PickupTime)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrInvalidPickupTime
	}

	if err := s.wait(ctx); err != nil {
		return domain.DonationResponse{}, err
	}

	d := entities.Donation{
		FoodItemID:  item.ID,
		NGOID:       volunteer.NGOID,
		VolunteerID: &volunteer.ID,
		Quantity:    item.Quantity,
		PickupTime:  &pickupTime,
		Status:      entities.DonationStatusScheduled,
	}
	if req.Notes != "" {
		d.Notes = &req.Notes
	}

	created := s.store.AddDonation(d)
	return donationResponse(created, s.store), nil
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest) (domain.DonationResponse, error) {
	if err := s.wait(ctx); err != nil {
		return domain.DonationResponse{}, err
	}

	d, err := s.store.UpdateDonationStatus(id, entities.DonationStatus(req.Status))
	if err != nil {
		return domain.DonationResponse{}, err
	}
	return donationResponse(d, s.store), nil
}

// wait sleeps for the configured demo delay, honoring cancellation.
func (s *donationService) wait(ctx context.Context) error {
	if s.demoDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.demoDelay):
		return nil
	}
}
