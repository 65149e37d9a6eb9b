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

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.RemoteUnavailable("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	doc, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.RemoteUnavailable("Failed to get request", err)
	}

	var request entity.Request
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

func (r *firestoreRequestRepository) Update(ctx context.Context, request *entity.Request) error {
	request.UpdatedAt = time.Now()

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.RemoteUnavailable("Failed to update request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("requests").Doc(id).Delete(ctx)
	if err != nil {
		return errors.RemoteUnavailable("Failed to delete request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) ListAll(ctx context.Context) ([]*entity.Request, error) {
	query := r.client.Collection("requests").OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreRequestRepository) ListByRequester(ctx context.Context, farmerID string) ([]*entity.Request, error) {
	query := r.client.Collection("requests").
		Where("farmer_id", "==", farmerID).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreRequestRepository) ListByKind(ctx context.Context, kind entity.RequestKind) ([]*entity.Request, error) {
	query := r.client.Collection("requests").
		Where("kind", "==", string(kind)).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreRequestRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Request, error) {
	var requests []*entity.Request

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.RemoteUnavailable("Failed to iterate requests", err)
		}

		var request entity.Request
		if err := doc.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
