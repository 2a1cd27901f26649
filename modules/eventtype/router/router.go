package router

import (
	"slotbook/core/middleware"
	"slotbook/modules/eventtype/controller"

	"github.com/labstack/echo/v4"
)

// EventTypeRouter handles event type routes
type EventTypeRouter struct {
	EventTypeController *controller.EventTypeController
}

// NewEventTypeRouter creates a new router
func NewEventTypeRouter(ctrl *controller.EventTypeController) *EventTypeRouter {
	return &EventTypeRouter{EventTypeController: ctrl}
}

// Setup registers event type routes
func (r *EventTypeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	events := v1.Group("/events")

	events.POST("", r.EventTypeController.Create)
	events.GET("", r.EventTypeController.List)
	events.GET("/slug/:slug", r.EventTypeController.GetBySlug)
	events.GET("/:id", r.EventTypeController.Get)
	events.PATCH("/:id", r.EventTypeController.Update)
	events.DELETE("/:id", r.EventTypeController.Delete)
}
