package repository

import (
	"context"

	"farmlytic/internal/domain/entity"
)

type FieldRepository interface {
	Create(ctx context.Context, field *entity.Field) error
	GetByID(ctx context.Context, id string) (*entity.Field, error)
	Update(ctx context.Context, field *entity.Field) error
	Delete(ctx context.Context, id string) error
	ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Field, error)
}
