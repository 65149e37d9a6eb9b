package handler

import (
	"farmlytic/internal/usecase"
	"farmlytic/pkg/response"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	requestUseCase      *usecase.RequestUseCase
	conversationUseCase *usecase.ConversationUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase, conversationUseCase *usecase.ConversationUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase:      requestUseCase,
		conversationUseCase: conversationUseCase,
	}
}

type createRequestRequest struct {
	Kind         string `json:"kind" validate:"required,oneof=purchase advice custom"`
	Item         string `json:"item"`
	CustomItem   string `json:"custom_item"`
	Quantity     int    `json:"quantity"`
	Description  string `json:"description" validate:"required"`
	TargetID     string `json:"target_id"`
	ContactPhone string `json:"contact_phone" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

type respondRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
	Response string `json:"response" validate:"required"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	farmerID := c.Get("uid").(string)

	request, err := h.requestUseCase.Create(c.Request().Context(), farmerID, usecase.CreateRequestInput{
		Kind:         req.Kind,
		Item:         req.Item,
		CustomItem:   req.CustomItem,
		Quantity:     req.Quantity,
		Description:  req.Description,
		TargetID:     req.TargetID,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	id := c.Param("id")
	viewerID := c.Get("uid").(string)

	request, err := h.requestUseCase.Get(c.Request().Context(), viewerID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

// ListRequests returns the viewer's projection of the request store. The
// shape depends on the caller's role, not on query parameters.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	viewerID := c.Get("uid").(string)

	requests, err := h.requestUseCase.ListFor(c.Request().Context(), viewerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *RequestHandler) RespondToRequest(c echo.Context) error {
	id := c.Param("id")

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	responderID := c.Get("uid").(string)

	request, err := h.requestUseCase.Respond(c.Request().Context(), responderID, id, req.Decision, req.Response)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *RequestHandler) CompleteRequest(c echo.Context) error {
	id := c.Param("id")
	responderID := c.Get("uid").(string)

	request, err := h.requestUseCase.Complete(c.Request().Context(), responderID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	id := c.Param("id")
	responderID := c.Get("uid").(string)

	if err := h.requestUseCase.Delete(c.Request().Context(), responderID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Request deleted successfully",
	})
}
