package router

import (
	"farmlytic/internal/adapter/api/handler"
	"farmlytic/internal/adapter/api/middleware"
	"farmlytic/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	requestHandler := handler.GetRequestHandler()
	conversationHandler := handler.GetConversationHandler()

	requests := e.Group("/v1/requests")
	requests.Use(authMiddleware.Authenticate)

	// Listing is role-projected inside the use case; any signed-in user
	// gets their own view.
	requests.GET("", requestHandler.ListRequests)
	requests.GET("/:id", requestHandler.GetRequest)

	requests.POST("", requestHandler.CreateRequest, roleMiddleware.Require(entity.RoleFarmer))

	responders := roleMiddleware.Require(entity.RoleSupplier, entity.RoleSpecialist)
	requests.POST("/:id/respond", requestHandler.RespondToRequest, responders)
	requests.POST("/:id/complete", requestHandler.CompleteRequest, responders)
	requests.DELETE("/:id", requestHandler.DeleteRequest, responders)

	requests.GET("/:id/messages", conversationHandler.ListMessages)
	requests.POST("/:id/messages", conversationHandler.AppendMessage)
}
