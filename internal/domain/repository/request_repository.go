package repository

import (
	"context"

	"farmlytic/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	Update(ctx context.Context, request *entity.Request) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Request, error)
	ListByRequester(ctx context.Context, farmerID string) ([]*entity.Request, error)
	ListByKind(ctx context.Context, kind entity.RequestKind) ([]*entity.Request, error)
}
