package repository

import (
	"context"
	"errors"
	"sort"
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

// requestSnapshot is the JSON payload stored under localcache.KeyRequests.
// LocalOnly marks a snapshot that carries mutations never confirmed by the
// remote source; it is discarded (with a warning) on the next successful
// remote load.
type requestSnapshot struct {
	Records   []*entity.Request `json:"records"`
	LocalOnly bool              `json:"local_only"`
}

// fallbackRequestRepository reconciles the remote request table with the
// local snapshot cache: remote first, local on RemoteUnavailable, the
// built-in sample set when no snapshot exists. A single failed remote
// attempt falls straight through to the local path; there is no retry.
type fallbackRequestRepository struct {
	remote repository.RequestRepository
	cache  *localcache.Store
	mutex  sync.Mutex
}

func NewFallbackRequestRepository(remote repository.RequestRepository, cache *localcache.Store) repository.RequestRepository {
	return &fallbackRequestRepository{
		remote: remote,
		cache:  cache,
	}
}

func (r *fallbackRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	if err := r.remote.Create(ctx, request); err != nil {
		if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
			return err
		}
		logger.LogSyncFallback("create", request.ID, err)
		r.applyLocal(true, func(snap *requestSnapshot) {
			if request.ID == "" {
				request.ID = uuid.New().String()
			}
			now := time.Now()
			if request.CreatedAt.IsZero() {
				request.CreatedAt = now
			}
			request.UpdatedAt = now
			snap.Records = append(snap.Records, request)
		})
		return nil
	}

	// Keep the snapshot fresh with the server-confirmed record.
	r.applyLocal(false, func(snap *requestSnapshot) {
		snap.Records = append(snap.Records, request)
	})
	return nil
}

func (r *fallbackRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	request, err := r.remote.GetByID(ctx, id)
	if err == nil {
		return request, nil
	}
	if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
		return nil, err
	}

	snap, loadErr := r.loadLocal()
	if loadErr != nil {
		return nil, loadErr
	}
	for _, rec := range snap.Records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, apperrors.NotFound("Request", nil)
}

func (r *fallbackRequestRepository) Update(ctx context.Context, request *entity.Request) error {
	if err := r.remote.Update(ctx, request); err != nil {
		if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
			return err
		}
		logger.LogSyncFallback("update", request.ID, err)
		request.UpdatedAt = time.Now()
		r.applyLocal(true, func(snap *requestSnapshot) {
			replaceRecord(snap, request)
		})
		return nil
	}

	r.applyLocal(false, func(snap *requestSnapshot) {
		replaceRecord(snap, request)
	})
	return nil
}

func (r *fallbackRequestRepository) Delete(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
			return err
		}
		logger.LogSyncFallback("delete", id, err)
		r.applyLocal(true, func(snap *requestSnapshot) {
			removeRecord(snap, id)
		})
		return nil
	}

	r.applyLocal(false, func(snap *requestSnapshot) {
		removeRecord(snap, id)
	})
	return nil
}

// ListAll is the load path: a successful remote fetch replaces the local
// snapshot wholesale (remote wins, no merge).
func (r *fallbackRequestRepository) ListAll(ctx context.Context) ([]*entity.Request, error) {
	records, err := r.remote.ListAll(ctx)
	if err == nil {
		r.replaceSnapshot(records)
		return records, nil
	}
	if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
		return nil, err
	}
	logger.Warn("Remote fetch failed, serving local snapshot: %v", err)

	snap, loadErr := r.loadLocal()
	if loadErr != nil {
		return nil, loadErr
	}
	records = append([]*entity.Request(nil), snap.Records...)
	sortNewestFirst(records)
	return records, nil
}

func (r *fallbackRequestRepository) ListByRequester(ctx context.Context, farmerID string) ([]*entity.Request, error) {
	records, err := r.remote.ListByRequester(ctx, farmerID)
	if err == nil {
		return records, nil
	}
	if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
		return nil, err
	}

	return r.filterLocal(func(rec *entity.Request) bool {
		return rec.RequesterID == farmerID
	})
}

func (r *fallbackRequestRepository) ListByKind(ctx context.Context, kind entity.RequestKind) ([]*entity.Request, error) {
	records, err := r.remote.ListByKind(ctx, kind)
	if err == nil {
		return records, nil
	}
	if !apperrors.Is(err, "REMOTE_UNAVAILABLE") {
		return nil, err
	}

	return r.filterLocal(func(rec *entity.Request) bool {
		return rec.Kind == kind
	})
}

func (r *fallbackRequestRepository) applyLocal(markLocalOnly bool, mutate func(*requestSnapshot)) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var snap requestSnapshot
	if err := r.cache.Get(localcache.KeyRequests, &snap); err != nil && !errors.Is(err, localcache.ErrNoSnapshot) {
		logger.Error("Failed to read request snapshot: %v", err)
		return
	}

	mutate(&snap)
	if markLocalOnly {
		snap.LocalOnly = true
	}

	if err := r.cache.Put(localcache.KeyRequests, &snap); err != nil {
		logger.Error("Failed to persist request snapshot: %v", err)
	}
}

func (r *fallbackRequestRepository) replaceSnapshot(records []*entity.Request) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var old requestSnapshot
	if err := r.cache.Get(localcache.KeyRequests, &old); err == nil && old.LocalOnly {
		logger.Warn("Discarding local-only request changes in favor of remote state")
	}

	snap := requestSnapshot{Records: records}
	if err := r.cache.Put(localcache.KeyRequests, &snap); err != nil {
		logger.Error("Failed to persist request snapshot: %v", err)
	}
}

func (r *fallbackRequestRepository) loadLocal() (*requestSnapshot, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var snap requestSnapshot
	err := r.cache.Get(localcache.KeyRequests, &snap)
	if errors.Is(err, localcache.ErrNoSnapshot) {
		snap = requestSnapshot{Records: seed.SampleRequests()}
		if putErr := r.cache.Put(localcache.KeyRequests, &snap); putErr != nil {
			logger.Error("Failed to persist seeded snapshot: %v", putErr)
		}
		return &snap, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *fallbackRequestRepository) filterLocal(keep func(*entity.Request) bool) ([]*entity.Request, error) {
	snap, err := r.loadLocal()
	if err != nil {
		return nil, err
	}

	var records []*entity.Request
	for _, rec := range snap.Records {
		if keep(rec) {
			records = append(records, rec)
		}
	}
	sortNewestFirst(records)
	return records, nil
}

func replaceRecord(snap *requestSnapshot, request *entity.Request) {
	for i, rec := range snap.Records {
		if rec.ID == request.ID {
			snap.Records[i] = request
			return
		}
	}
	snap.Records = append(snap.Records, request)
}

func removeRecord(snap *requestSnapshot, id string) {
	for i, rec := range snap.Records {
		if rec.ID == id {
			snap.Records = append(snap.Records[:i], snap.Records[i+1:]...)
			return
		}
	}
}

func sortNewestFirst(records []*entity.Request) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}
