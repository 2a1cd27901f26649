package controller

import (
	"slotbook/core/controller"
	"slotbook/core/errors"
	"slotbook/modules/availability/dto"
	"slotbook/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// GetDaySlots handles GET /events/:id/slots?date=YYYY-MM-DD
func (c *AvailabilityController) GetDaySlots(ctx echo.Context) error {
	eventTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	date := ctx.QueryParam("date")
	if date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Date is required")
	}

	result, appErr := c.AvailabilityService.GetDaySlots(ctx.Request().Context(), eventTypeID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetSettings handles GET /events/:id/availability-settings
func (c *AvailabilityController) GetSettings(ctx echo.Context) error {
	eventTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.AvailabilityService.GetSettings(ctx.Request().Context(), eventTypeID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SaveSettings handles POST /events/:id/availability
func (c *AvailabilityController) SaveSettings(ctx echo.Context) error {
	eventTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.SaveSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	appErr := c.AvailabilityService.SaveSettings(ctx.Request().Context(), eventTypeID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Availability saved")
}

// SeedDefaults handles POST /events/:id/availability/seed
func (c *AvailabilityController) SeedDefaults(ctx echo.Context) error {
	eventTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.AvailabilityService.SeedDefaults(ctx.Request().Context(), eventTypeID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Default availability created (9 AM - 5 PM, Mon-Fri)")
}
