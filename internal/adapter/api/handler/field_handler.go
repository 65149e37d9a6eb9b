package handler

import (
	"time"

	"farmlytic/internal/usecase"
	"farmlytic/pkg/response"

	"github.com/labstack/echo/v4"
)

type FieldHandler struct {
	fieldUseCase *usecase.FieldUseCase
}

func NewFieldHandler(fieldUseCase *usecase.FieldUseCase) *FieldHandler {
	return &FieldHandler{
		fieldUseCase: fieldUseCase,
	}
}

type fieldRequest struct {
	Name         string     `json:"name" validate:"required"`
	Location     string     `json:"location" validate:"required"`
	Size         float64    `json:"size" validate:"gte=0"`
	SizeUnit     string     `json:"size_unit"`
	CropType     string     `json:"crop_type"`
	PlantingDate *time.Time `json:"planting_date"`
	Notes        string     `json:"notes"`
}

func (r fieldRequest) toInput() usecase.FieldInput {
	return usecase.FieldInput{
		Name:         r.Name,
		Location:     r.Location,
		Size:         r.Size,
		SizeUnit:     r.SizeUnit,
		CropType:     r.CropType,
		PlantingDate: r.PlantingDate,
		Notes:        r.Notes,
	}
}

func (h *FieldHandler) CreateField(c echo.Context) error {
	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	farmerID := c.Get("uid").(string)

	field, err := h.fieldUseCase.Create(c.Request().Context(), farmerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, field)
}

func (h *FieldHandler) GetField(c echo.Context) error {
	id := c.Param("id")
	farmerID := c.Get("uid").(string)

	field, err := h.fieldUseCase.Get(c.Request().Context(), farmerID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, field)
}

func (h *FieldHandler) UpdateField(c echo.Context) error {
	id := c.Param("id")

	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	farmerID := c.Get("uid").(string)

	field, err := h.fieldUseCase.Update(c.Request().Context(), farmerID, id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, field)
}

func (h *FieldHandler) DeleteField(c echo.Context) error {
	id := c.Param("id")
	farmerID := c.Get("uid").(string)

	if err := h.fieldUseCase.Delete(c.Request().Context(), farmerID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Field deleted successfully",
	})
}

func (h *FieldHandler) ListFields(c echo.Context) error {
	farmerID := c.Get("uid").(string)

	fields, err := h.fieldUseCase.List(c.Request().Context(), farmerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, fields)
}

func (h *FieldHandler) GetFieldWeather(c echo.Context) error {
	id := c.Param("id")
	farmerID := c.Get("uid").(string)

	weather, err := h.fieldUseCase.Weather(c.Request().Context(), farmerID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, weather)
}
