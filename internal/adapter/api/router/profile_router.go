package router

import (
	"farmlytic/internal/adapter/api/handler"
	"farmlytic/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profiles := e.Group("/v1/profiles")
	profiles.Use(authMiddleware.Authenticate)

	profiles.GET("/specialists", profileHandler.ListSpecialists)
	profiles.GET("/:id", profileHandler.GetProfile)
	profiles.PUT("/me", profileHandler.UpdateProfile)
}
