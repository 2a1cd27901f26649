package eventtype

import (
	"slotbook/core/database"
	"slotbook/core/middleware"
	"slotbook/modules/eventtype/controller"
	"slotbook/modules/eventtype/repository"
	"slotbook/modules/eventtype/router"
	"slotbook/modules/eventtype/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event type module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewEventTypeRepository(db)
	svc := service.NewEventTypeService(repo)
	ctrl := controller.NewEventTypeController(svc)
	rtr := router.NewEventTypeRouter(ctrl)

	rtr.Setup(e, mw)
}
