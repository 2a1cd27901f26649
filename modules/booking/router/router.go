package router

import (
	"slotbook/core/middleware"
	"slotbook/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

// BookingRouter handles booking routes
type BookingRouter struct {
	BookingController *controller.BookingController
}

// NewBookingRouter creates a new router
func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{BookingController: ctrl}
}

// Setup registers booking routes
func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	bookings := v1.Group("/bookings")

	bookings.POST("", r.BookingController.Create)
	bookings.GET("", r.BookingController.List)
	bookings.GET("/event/:eventTypeId", r.BookingController.ListForEvent)
	bookings.PUT("/:id", r.BookingController.Reschedule)
	bookings.DELETE("/:id", r.BookingController.Cancel)
}
