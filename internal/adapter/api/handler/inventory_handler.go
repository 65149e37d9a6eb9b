package handler

import (
	"farmlytic/internal/usecase"
	"farmlytic/pkg/response"
	"farmlytic/pkg/utils"

	"github.com/labstack/echo/v4"
)

type InventoryHandler struct {
	inventoryUseCase *usecase.InventoryUseCase
}

func NewInventoryHandler(inventoryUseCase *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
	}
}

type inventoryItemRequest struct {
	Name      string  `json:"name" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=seed fertilizer pesticide equipment"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price" validate:"gte=0"`
	Available bool    `json:"available"`
}

func (r inventoryItemRequest) toInput() usecase.InventoryItemInput {
	return usecase.InventoryItemInput{
		Name:      r.Name,
		Type:      r.Type,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		Price:     r.Price,
		Available: r.Available,
	}
}

func (h *InventoryHandler) CreateItem(c echo.Context) error {
	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	supplierID := c.Get("uid").(string)

	item, err := h.inventoryUseCase.Create(c.Request().Context(), supplierID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	id := c.Param("id")

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	supplierID := c.Get("uid").(string)

	item, err := h.inventoryUseCase.Update(c.Request().Context(), supplierID, id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")
	supplierID := c.Get("uid").(string)

	if err := h.inventoryUseCase.Delete(c.Request().Context(), supplierID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item deleted successfully",
	})
}

func (h *InventoryHandler) ListMyItems(c echo.Context) error {
	supplierID := c.Get("uid").(string)

	items, err := h.inventoryUseCase.ListBySupplier(c.Request().Context(), supplierID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

// ListAvailableItems serves the farmers' catalog view, paged.
func (h *InventoryHandler) ListAvailableItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, err := h.inventoryUseCase.ListAvailable(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	total := int64(len(items))
	start := pagination.Offset
	if start > len(items) {
		start = len(items)
	}
	end := start + pagination.PageSize
	if end > len(items) {
		end = len(items)
	}

	return response.Paginated(c, items[start:end], total, pagination.Page, pagination.PageSize)
}
