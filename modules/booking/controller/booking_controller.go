package controller

import (
	"slotbook/core/controller"
	"slotbook/core/errors"
	"slotbook/modules/booking/dto"
	"slotbook/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingController handles booking HTTP requests
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

// NewBookingController creates a new controller
func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// Create handles POST /bookings
func (c *BookingController) Create(ctx echo.Context) error {
	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Booking created successfully")
}

// Reschedule handles PUT /bookings/:id
func (c *BookingController) Reschedule(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	var req dto.RescheduleBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Reschedule(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Booking rescheduled successfully")
}

// Cancel handles DELETE /bookings/:id
func (c *BookingController) Cancel(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	appErr := c.BookingService.Cancel(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Booking cancelled successfully")
}

// List handles GET /bookings
func (c *BookingController) List(ctx echo.Context) error {
	result, appErr := c.BookingService.ListAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListForEvent handles GET /bookings/event/:eventTypeId
func (c *BookingController) ListForEvent(ctx echo.Context) error {
	eventTypeID, err := uuid.Parse(ctx.Param("eventTypeId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event type ID")
	}

	result, appErr := c.BookingService.ListByEventType(ctx.Request().Context(), eventTypeID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
