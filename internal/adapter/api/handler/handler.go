package handler

import (
	"farmlytic/internal/infrastructure/websocket"
	"farmlytic/internal/usecase"
)

var (
	authHandler         *AuthHandler
	profileHandler      *ProfileHandler
	requestHandler      *RequestHandler
	conversationHandler *ConversationHandler
	fieldHandler        *FieldHandler
	inventoryHandler    *InventoryHandler
	websocketHandler    *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	profileUseCase *usecase.ProfileUseCase,
	requestUseCase *usecase.RequestUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	fieldUseCase *usecase.FieldUseCase,
	inventoryUseCase *usecase.InventoryUseCase,
	wsManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	requestHandler = NewRequestHandler(requestUseCase, conversationUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase)
	fieldHandler = NewFieldHandler(fieldUseCase)
	inventoryHandler = NewInventoryHandler(inventoryUseCase)
	websocketHandler = NewWebSocketHandler(wsManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetFieldHandler() *FieldHandler {
	return fieldHandler
}

func GetInventoryHandler() *InventoryHandler {
	return inventoryHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}
