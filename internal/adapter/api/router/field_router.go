package router

import (
	"farmlytic/internal/adapter/api/handler"
	"farmlytic/internal/adapter/api/middleware"
	"farmlytic/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupFieldRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	fieldHandler := handler.GetFieldHandler()

	fields := e.Group("/v1/fields")
	fields.Use(authMiddleware.Authenticate)
	fields.Use(roleMiddleware.Require(entity.RoleFarmer))

	fields.GET("", fieldHandler.ListFields)
	fields.POST("", fieldHandler.CreateField)
	fields.GET("/:id", fieldHandler.GetField)
	fields.PUT("/:id", fieldHandler.UpdateField)
	fields.DELETE("/:id", fieldHandler.DeleteField)
	fields.GET("/:id/weather", fieldHandler.GetFieldWeather)
}
