package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/internal/infrastructure/localcache"
	"farmlytic/internal/seed"
	apperrors "farmlytic/pkg/errors"
	"farmlytic/pkg/logger"
)

// conversationSnapshot maps request IDs to their entries in insertion
// order under localcache.KeyConversations.
type conversationSnapshot struct {
	Entries   map[string][]*entity.ConversationEntry `json:"entries"`
	LocalOnly bool                                   `json:"local_only"`
}

type fallbackConversationRepository struct {
	remote repository.ConversationRepository
	cache  *localcache.Store
	mutex  sync.Mutex
}

func NewFallbackConversationRepository(remote repository.ConversationRepository, cache *localcache.Store) repository.ConversationRepository {
	return &fallbackConversationRepository{
		remote: remote,
		cache:  cache,
	}
}

func (r *fallbackConversationRepository) Append(ctx context.Context, entry *entity.ConversationEntry) error {
	if err := r.remote.Append(ctx, entry); err != nil {
		if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
			return err
		}
		logger.LogSyncFallback("append", entry.RequestID, err)
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		r.applyLocal(true, func(snap *conversationSnapshot) {
			snap.Entries[entry.RequestID] = append(snap.Entries[entry.RequestID], entry)
		})
		return nil
	}

	r.applyLocal(false, func(snap *conversationSnapshot) {
		snap.Entries[entry.RequestID] = append(snap.Entries[entry.RequestID], entry)
	})
	return nil
}

func (r *fallbackConversationRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.ConversationEntry, error) {
	entries, err := r.remote.ListByRequest(ctx, requestID)
	if err == nil {
		r.applyLocal(false, func(snap *conversationSnapshot) {
			if snap.LocalOnly {
				logger.Warn("Discarding local-only conversation changes for request %s", requestID)
				snap.LocalOnly = false
			}
			snap.Entries[requestID] = entries
		})
		return entries, nil
	}
	if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
		return nil, err
	}

	snap, loadErr := r.loadLocal()
	if loadErr != nil {
		return nil, loadErr
	}
	return snap.Entries[requestID], nil
}

func (r *fallbackConversationRepository) DeleteByRequest(ctx context.Context, requestID string) error {
	if err := r.remote.DeleteByRequest(ctx, requestID); err != nil {
		if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
			return err
		}
		logger.LogSyncFallback("delete-conversation", requestID, err)
		r.applyLocal(true, func(snap *conversationSnapshot) {
			delete(snap.Entries, requestID)
		})
		return nil
	}

	r.applyLocal(false, func(snap *conversationSnapshot) {
		delete(snap.Entries, requestID)
	})
	return nil
}

func (r *fallbackConversationRepository) applyLocal(markLocalOnly bool, mutate func(*conversationSnapshot)) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	snap := conversationSnapshot{Entries: make(map[string][]*entity.ConversationEntry)}
	if err := r.cache.Get(localcache.KeyConversations, &snap); err != nil && !errors.Is(err, localcache.ErrNoSnapshot) {
		logger.Error("Failed to read conversation snapshot: %v", err)
		return
	}
	if snap.Entries == nil {
		snap.Entries = make(map[string][]*entity.ConversationEntry)
	}

	mutate(&snap)
	if markLocalOnly {
		snap.LocalOnly = true
	}

	if err := r.cache.Put(localcache.KeyConversations, &snap); err != nil {
		logger.Error("Failed to persist conversation snapshot: %v", err)
	}
}

func (r *fallbackConversationRepository) loadLocal() (*conversationSnapshot, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var snap conversationSnapshot
	err := r.cache.Get(localcache.KeyConversations, &snap)
	if errors.Is(err, localcache.ErrNoSnapshot) {
		snap = conversationSnapshot{Entries: seed.SampleConversations()}
		if putErr := r.cache.Put(localcache.KeyConversations, &snap); putErr != nil {
			logger.Error("Failed to persist seeded conversation snapshot: %v", putErr)
		}
		return &snap, nil
	}
	if err != nil {
		return nil, err
	}
	if snap.Entries == nil {
		snap.Entries = make(map[string][]*entity.ConversationEntry)
	}
	return &snap, nil
}
