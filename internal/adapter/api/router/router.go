package router

import (
	"farmlytic/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupRequestRouter(e, authMiddleware, roleMiddleware)
	SetupFieldRouter(e, authMiddleware, roleMiddleware)
	SetupInventoryRouter(e, authMiddleware, roleMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
