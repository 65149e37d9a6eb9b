package sync

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"

	"farmlytic/internal/domain/repository"
	"farmlytic/internal/infrastructure/websocket"
	"farmlytic/pkg/logger"
)

// Watcher subscribes to the remote request table's change feed. Each
// change triggers a full refetch through the fallback repository, which
// persists a fresh snapshot, and a refresh event is pushed to every
// connected viewer.
type Watcher struct {
	client      *firestore.Client
	requestRepo repository.RequestRepository
	wsManager   *websocket.Manager
}

type refreshEvent struct {
	Event string    `json:"event"`
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

func NewWatcher(client *firestore.Client, requestRepo repository.RequestRepository, wsManager *websocket.Manager) *Watcher {
	return &Watcher{
		client:      client,
		requestRepo: requestRepo,
		wsManager:   wsManager,
	}
}

// Start runs the listen loop in a goroutine until ctx is cancelled. A
// broken listener is reopened after a short delay.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			if err := w.listen(ctx); err != nil {
				logger.Warn("Change feed interrupted: %v", err)
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
		}
	}()
}

func (w *Watcher) listen(ctx context.Context) error {
	snapshots := w.client.Collection("requests").Snapshots(ctx)
	defer snapshots.Stop()

	// The first snapshot reports every existing document as an addition;
	// skip it so startup does not broadcast a spurious refresh.
	initial := true

	for {
		snap, err := snapshots.Next()
		if err != nil {
			return err
		}

		if initial {
			initial = false
			continue
		}
		if len(snap.Changes) == 0 {
			continue
		}

		w.refresh(ctx)
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	records, err := w.requestRepo.ListAll(ctx)
	if err != nil {
		logger.Error("Refetch after remote change failed: %v", err)
		return
	}

	payload, err := json.Marshal(refreshEvent{
		Event: "requests_changed",
		Count: len(records),
		At:    time.Now(),
	})
	if err != nil {
		logger.Error("Failed to encode refresh event: %v", err)
		return
	}

	w.wsManager.Broadcast(payload)
	logger.Debug("Broadcast refresh: %d requests", len(records))
}
