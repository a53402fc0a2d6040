package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"replate-backend/domain"
	"replate-backend/internal/api/presenters"
	"replate-backend/pkg/claim"
)

type (
	ClaimHandler interface {
		GetFlashSales(c *fiber.Ctx) error
		ClaimFoodItem(c *fiber.Ctx) error
		GetClaims(c *fiber.Ctx) error
		MarkPickedUp(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) GetFlashSales(c *fiber.Ctx) error {
	sales, err := h.claimService.GetActiveFlashSales(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFlashSales, err)
	}

	return presenters.SuccessResponse(c, sales, fiber.StatusOK, domain.MessageSuccessGetFlashSales)
}

func (h *claimHandler) ClaimFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ClaimFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimFoodItem, err)
	}

	res, err := h.claimService.ClaimFoodItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessClaimFoodItem)
}

func (h *claimHandler) GetClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.claimService.GetStudentClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, claims, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) MarkPickedUp(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")

	res, err := h.claimService.MarkPickedUp(c.Context(), claimID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkPickedUp, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkPickedUp)
}
