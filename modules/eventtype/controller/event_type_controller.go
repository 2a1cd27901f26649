package controller

import (
	"slotbook/core/controller"
	"slotbook/core/errors"
	"slotbook/modules/eventtype/dto"
	"slotbook/modules/eventtype/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventTypeController handles event type HTTP requests
type EventTypeController struct {
	controller.BaseController
	EventTypeService service.EventTypeServiceInterface
}

// NewEventTypeController creates a new controller
func NewEventTypeController(svc service.EventTypeServiceInterface) *EventTypeController {
	return &EventTypeController{
		BaseController:   controller.NewBaseController(),
		EventTypeService: svc,
	}
}

// Create handles POST /events
func (c *EventTypeController) Create(ctx echo.Context) error {
	var req dto.CreateEventTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventTypeService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Event created successfully")
}

// Get handles GET /events/:id
func (c *EventTypeController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventTypeService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetBySlug handles GET /events/slug/:slug
func (c *EventTypeController) GetBySlug(ctx echo.Context) error {
	result, appErr := c.EventTypeService.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /events
func (c *EventTypeController) List(ctx echo.Context) error {
	result, appErr := c.EventTypeService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PATCH /events/:id
func (c *EventTypeController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventTypeService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// Delete handles DELETE /events/:id
func (c *EventTypeController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	appErr := c.EventTypeService.Delete(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
