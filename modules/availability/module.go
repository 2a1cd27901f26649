package availability

import (
	"slotbook/core/database"
	"slotbook/core/middleware"
	"slotbook/modules/availability/controller"
	"slotbook/modules/availability/repository"
	"slotbook/modules/availability/router"
	"slotbook/modules/availability/service"
	bookingrepo "slotbook/modules/booking/repository"
	eventrepo "slotbook/modules/eventtype/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(
		repo,
		eventrepo.NewEventTypeRepository(db),
		bookingrepo.NewBookingRepository(db),
	)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
