package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/pkg/errors"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) Append(ctx context.Context, entry *entity.ConversationEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.client.Collection("requests").Doc(entry.RequestID).
		Collection("messages").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.RemoteUnavailable("Failed to append conversation entry", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.ConversationEntry, error) {
	query := r.client.Collection("requests").Doc(requestID).
		Collection("messages").OrderBy("timestamp", firestore.Asc)

	iter := query.Documents(ctx)
	var entries []*entity.ConversationEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.RemoteUnavailable("Failed to iterate conversation entries", err)
		}

		var entry entity.ConversationEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse conversation entry", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreConversationRepository) DeleteByRequest(ctx context.Context, requestID string) error {
	iter := r.client.Collection("requests").Doc(requestID).Collection("messages").Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.RemoteUnavailable("Failed to iterate conversation entries", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.RemoteUnavailable("Failed to delete conversation entry", err)
		}
	}

	return nil
}
