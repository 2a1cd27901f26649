package router

import (
	"slotbook/core/middleware"
	"slotbook/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(ctrl *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{AvailabilityController: ctrl}
}

// Setup registers availability routes under the events resource
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	events := v1.Group("/events")

	events.GET("/:id/slots", r.AvailabilityController.GetDaySlots)
	events.GET("/:id/availability-settings", r.AvailabilityController.GetSettings)
	events.POST("/:id/availability", r.AvailabilityController.SaveSettings)
	events.POST("/:id/availability/seed", r.AvailabilityController.SeedDefaults)
}
