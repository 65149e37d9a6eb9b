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

type firestoreFieldRepository struct {
	client *firestore.Client
}

func NewFirestoreFieldRepository(client *firestore.Client) repository.FieldRepository {
	return &firestoreFieldRepository{
		client: client,
	}
}

func (r *firestoreFieldRepository) Create(ctx context.Context, field *entity.Field) error {
	if field.ID == "" {
		field.ID = uuid.New().String()
	}

	now := time.Now()
	field.CreatedAt = now
	field.UpdatedAt = now

	_, err := r.client.Collection("fields").Doc(field.ID).Set(ctx, field)
	if err != nil {
		return errors.RemoteUnavailable("Failed to create field", err)
	}

	return nil
}

func (r *firestoreFieldRepository) GetByID(ctx context.Context, id string) (*entity.Field, error) {
	doc, err := r.client.Collection("fields").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Field", err)
		}
		return nil, errors.RemoteUnavailable("Failed to get field", err)
	}

	var field entity.Field
	if err := doc.DataTo(&field); err != nil {
		return nil, errors.Internal("Failed to parse field data", err)
	}

	return &field, nil
}

func (r *firestoreFieldRepository) Update(ctx context.Context, field *entity.Field) error {
	field.UpdatedAt = time.Now()

	_, err := r.client.Collection("fields").Doc(field.ID).Set(ctx, field)
	if err != nil {
		return errors.RemoteUnavailable("Failed to update field", err)
	}

	return nil
}

func (r *firestoreFieldRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("fields").Doc(id).Delete(ctx)
	if err != nil {
		return errors.RemoteUnavailable("Failed to delete field", err)
	}

	return nil
}

func (r *firestoreFieldRepository) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Field, error) {
	query := r.client.Collection("fields").
		Where("farmer_id", "==", farmerID).
		OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	var fields []*entity.Field

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.RemoteUnavailable("Failed to iterate fields", err)
		}

		var field entity.Field
		if err := doc.DataTo(&field); err != nil {
			return nil, errors.Internal("Failed to parse field data", err)
		}
		fields = append(fields, &field)
	}

	return fields, nil
}
