package repository

import (
	"context"

	"farmlytic/internal/domain/entity"
)

type ConversationRepository interface {
	Append(ctx context.Context, entry *entity.ConversationEntry) error
	ListByRequest(ctx context.Context, requestID string) ([]*entity.ConversationEntry, error)
	DeleteByRequest(ctx context.Context, requestID string) error
}
