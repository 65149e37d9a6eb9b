package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/pkg/errors"
)

type firestoreInventoryRepository struct {
	client *firestore.Client
}

func NewFirestoreInventoryRepository(client *firestore.Client) repository.InventoryRepository {
	return &firestoreInventoryRepository{
		client: client,
	}
}

func (r *firestoreInventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.client.Collection("inventory").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.RemoteUnavailable("Failed to create inventory item", err)
	}

	return nil
}

func (r *firestoreInventoryRepository) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	doc, err := r.client.Collection("inventory").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Inventory item", err)
		}
		return nil, errors.RemoteUnavailable("Failed to get inventory item", err)
	}

	var item entity.InventoryItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse inventory item data", err)
	}

	return &item, nil
}

func (r *firestoreInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("inventory").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.RemoteUnavailable("Failed to update inventory item", err)
	}

	return nil
}

func (r *firestoreInventoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("inventory").Doc(id).Delete(ctx)
	if err != nil {
		return errors.RemoteUnavailable("Failed to delete inventory item", err)
	}

	return nil
}

func (r *firestoreInventoryRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.InventoryItem, error) {
	query := r.client.Collection("inventory").
		Where("supplier_id", "==", supplierID).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreInventoryRepository) ListAvailable(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := r.client.Collection("inventory").
		Where("available", "==", true).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreInventoryRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.RemoteUnavailable("Failed to iterate inventory items", err)
		}

		var item entity.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse inventory item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
