package repository

import (
	"context"

	"farmlytic/internal/domain/entity"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.InventoryItem, error)
	ListAvailable(ctx context.Context) ([]*entity.InventoryItem, error)
}
