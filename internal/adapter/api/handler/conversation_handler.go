package handler

import (
	"farmlytic/internal/usecase"
	"farmlytic/pkg/response"

	"github.com/labstack/echo/v4"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

type appendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ConversationHandler) AppendMessage(c echo.Context) error {
	requestID := c.Param("id")

	var req appendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	entry, err := h.conversationUseCase.Append(c.Request().Context(), senderID, requestID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *ConversationHandler) ListMessages(c echo.Context) error {
	requestID := c.Param("id")

	entries, err := h.conversationUseCase.Get(c.Request().Context(), requestID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
