package router

import (
	"farmlytic/internal/adapter/api/handler"
	"farmlytic/internal/adapter/api/middleware"
	"farmlytic/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupInventoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	inventoryHandler := handler.GetInventoryHandler()

	// Farmers browse the catalog; suppliers manage their own items.
	inventory := e.Group("/v1/inventory")
	inventory.Use(authMiddleware.Authenticate)
	inventory.GET("", inventoryHandler.ListAvailableItems)

	myInventory := e.Group("/v1/my-inventory")
	myInventory.Use(authMiddleware.Authenticate)
	myInventory.Use(roleMiddleware.Require(entity.RoleSupplier))
	myInventory.GET("", inventoryHandler.ListMyItems)
	myInventory.POST("", inventoryHandler.CreateItem)
	myInventory.PUT("/:id", inventoryHandler.UpdateItem)
	myInventory.DELETE("/:id", inventoryHandler.DeleteItem)
}
