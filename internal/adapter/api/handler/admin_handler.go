package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/usecase"
	"mbogamarket/pkg/errors"
	"mbogamarket/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type setSubscriptionRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
	Ends   string `json:"subscriptionEnds" validate:"omitempty"`
}

func (h *AdminHandler) ListVendors(c echo.Context) error {
	vendors, err := h.adminUseCase.ListVendors(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendors)
}

func (h *AdminHandler) DeleteVendor(c echo.Context) error {
	id := c.Param("id")

	if err := h.adminUseCase.DeleteVendor(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Vendor deleted",
	})
}

func (h *AdminHandler) SetSubscription(c echo.Context) error {
	id := c.Param("id")

	var req setSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var ends *time.Time
	if req.Ends != "" {
		parsed, err := time.Parse(time.RFC3339, req.Ends)
		if err != nil {
			return response.Error(c, errors.Validation("subscriptionEnds must be an RFC3339 timestamp", err))
		}
		ends = &parsed
	}

	err := h.adminUseCase.SetSubscription(c.Request().Context(), id, usecase.SetSubscriptionInput{
		Status: entity.SubscriptionStatus(req.Status),
		Ends:   ends,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Subscription updated",
	})
}
