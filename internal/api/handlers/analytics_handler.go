package handlers

import (
	"github.com/gofiber/fiber/v2"

	"replate-backend/domain"
	"replate-backend/internal/api/presenters"
	"replate-backend/pkg/analytics"
)

type (
	AnalyticsHandler interface {
		GetCanteenAnalytics(c *fiber.Ctx) error
		GetPlatformStats(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetCanteenAnalytics(c *fiber.Ctx) error {
	canteenID := c.Params("id")
	since := c.Query("since")

	snapshots, err := h.analyticsService.GetCanteenAnalytics(c.Context(), canteenID, since)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, snapshots, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}

func (h *analyticsHandler) GetPlatformStats(c *fiber.Ctx) error {
	stats, err := h.analyticsService.GetPlatformStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlatformStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetPlatformStats)
}
