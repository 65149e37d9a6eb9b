package handler

import (
	"farmlytic/internal/usecase"
	"farmlytic/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")

	profile, err := h.profileUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// ListSpecialists feeds the advice form's target picker.
func (h *ProfileHandler) ListSpecialists(c echo.Context) error {
	specialists, err := h.profileUseCase.ListSpecialists(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, specialists)
}
