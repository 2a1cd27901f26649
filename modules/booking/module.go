package booking

import (
	"slotbook/core/database"
	"slotbook/core/middleware"
	"slotbook/modules/booking/controller"
	"slotbook/modules/booking/repository"
	"slotbook/modules/booking/router"
	"slotbook/modules/booking/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the booking module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(repo)
	ctrl := controller.NewBookingController(svc)
	rtr := router.NewBookingRouter(ctrl)

	rtr.Setup(e, mw)
}
