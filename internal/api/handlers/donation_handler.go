package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"replate-backend/domain"
	"replate-backend/internal/api/presenters"
	"replate-backend/pkg/donation"
)

type (
	DonationHandler interface {
		GetDonations(c *fiber.Ctx) error
		GetPendingItems(c *fiber.Ctx) error
		SchedulePickup(c *fiber.Ctx) error
		UpdateDonationStatus(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	donations, err := h.donationService.GetDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetPendingItems(c *fiber.Ctx) error {
	items, err := h.donationService.GetPendingDonationItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPendingItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPendingItems)
}

func (h *donationHandler) SchedulePickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SchedulePickupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSchedulePickup, err)
	}

	res, err := h.donationService.SchedulePickup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSchedulePickup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSchedulePickup)
}

func (h *donationHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	donationID := c.Params("id")
	req := new(domain.UpdateDonationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	res, err := h.donationService.UpdateDonationStatus(c.Context(), donationID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}
