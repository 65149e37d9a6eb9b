package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/infrastructure/localcache"
	apperrors "farmlytic/pkg/errors"
)

// flakyRemote is a toggleable in-memory stand-in for the hosted backend.
type flakyRemote struct {
	down    bool
	records map[string]*entity.Request
}

func newFlakyRemote() *flakyRemote {
	return &flakyRemote{records: make(map[string]*entity.Request)}
}

func (r *flakyRemote) fail() error {
	return apperrors.RemoteUnavailable("remote store unreachable", nil)
}

func (r *flakyRemote) Create(ctx context.Context, request *entity.Request) error {
	if r.down {
		return r.fail()
	}
	if request.ID == "" {
		request.ID = "remote-" + request.Item
	}
	r.records[request.ID] = request
	return nil
}

func (r *flakyRemote) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	if r.down {
		return nil, r.fail()
	}
	request, ok := r.records[id]
	if !ok {
		return nil, apperrors.NotFound("Request", nil)
	}
	return request, nil
}

func (r *flakyRemote) Update(ctx context.Context, request *entity.Request) error {
	if r.down {
		return r.fail()
	}
	r.records[request.ID] = request
	return nil
}

func (r *flakyRemote) Delete(ctx context.Context, id string) error {
	if r.down {
		return r.fail()
	}
	delete(r.records, id)
	return nil
}

func (r *flakyRemote) ListAll(ctx context.Context) ([]*entity.Request, error) {
	if r.down {
		return nil, r.fail()
	}
	var out []*entity.Request
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *flakyRemote) ListByRequester(ctx context.Context, farmerID string) ([]*entity.Request, error) {
	if r.down {
		return nil, r.fail()
	}
	var out []*entity.Request
	for _, rec := range r.records {
		if rec.RequesterID == farmerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *flakyRemote) ListByKind(ctx context.Context, kind entity.RequestKind) ([]*entity.Request, error) {
	if r.down {
		return nil, r.fail()
	}
	var out []*entity.Request
	for _, rec := range r.records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestFallback(t *testing.T) (*flakyRemote, *localcache.Store, *fallbackRequestRepository) {
	t.Helper()
	cache, err := localcache.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	remote := newFlakyRemote()
	repo := NewFallbackRequestRepository(remote, cache).(*fallbackRequestRepository)
	return remote, cache, repo
}

func TestListAllSeedsSamplesWhenRemoteDownAndNoSnapshot(t *testing.T) {
	remote, _, repo := newTestFallback(t)
	remote.down = true

	records, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	ids := make(map[string]bool)
	for _, rec := range records {
		ids[rec.ID] = true
	}
	assert.True(t, ids["sample-req-1"])
	assert.True(t, ids["sample-req-2"])
	assert.True(t, ids["sample-req-3"])
}

func TestRemoteListReplacesSnapshot(t *testing.T) {
	remote, cache, repo := newTestFallback(t)
	ctx := context.Background()

	remote.records["r1"] = &entity.Request{ID: "r1", Kind: entity.KindPurchase, Status: entity.StatusPending}
	_, err := repo.ListAll(ctx)
	require.NoError(t, err)

	// Remote goes away; the last fetched state survives.
	remote.down = true
	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)

	var snap requestSnapshot
	require.NoError(t, cache.Get(localcache.KeyRequests, &snap))
	assert.False(t, snap.LocalOnly)
}

func TestOfflineCreateMarksSnapshotLocalOnly(t *testing.T) {
	remote, cache, repo := newTestFallback(t)
	ctx := context.Background()

	// Populate the snapshot from a healthy remote first.
	remote.records["r1"] = &entity.Request{ID: "r1", Kind: entity.KindPurchase, Status: entity.StatusPending}
	_, err := repo.ListAll(ctx)
	require.NoError(t, err)

	remote.down = true
	created := &entity.Request{
		RequesterID: "farmer-1",
		Kind:        entity.KindPurchase,
		Item:        "seeds",
		Status:      entity.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	var snap requestSnapshot
	require.NoError(t, cache.Get(localcache.KeyRequests, &snap))
	assert.True(t, snap.LocalOnly)
	assert.Len(t, snap.Records, 2)

	// The locally created record is readable while offline.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "seeds", got.Item)
}

func TestRemoteWinsOverLocalOnlyChanges(t *testing.T) {
	remote, cache, repo := newTestFallback(t)
	ctx := context.Background()

	remote.down = true
	require.NoError(t, repo.Create(ctx, &entity.Request{
		RequesterID: "farmer-1",
		Kind:        entity.KindPurchase,
		Item:        "offline-only",
		Status:      entity.StatusPending,
	}))

	// Remote comes back holding a different state; its view replaces the
	// local-only snapshot wholesale.
	remote.down = false
	remote.records["r9"] = &entity.Request{ID: "r9", Kind: entity.KindAdvice, Status: entity.StatusPending}

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r9", records[0].ID)

	var snap requestSnapshot
	require.NoError(t, cache.Get(localcache.KeyRequests, &snap))
	assert.False(t, snap.LocalOnly)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "r9", snap.Records[0].ID)
}

func TestOfflineUpdateAndDelete(t *testing.T) {
	remote, _, repo := newTestFallback(t)
	ctx := context.Background()

	remote.records["r1"] = &entity.Request{ID: "r1", Kind: entity.KindPurchase, Status: entity.StatusPending, Item: "seeds"}
	remote.records["r2"] = &entity.Request{ID: "r2", Kind: entity.KindPurchase, Status: entity.StatusPending, Item: "pump"}
	_, err := repo.ListAll(ctx)
	require.NoError(t, err)

	remote.down = true

	updated := &entity.Request{ID: "r1", Kind: entity.KindPurchase, Status: entity.StatusAccepted, Item: "seeds", Response: "ok"}
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, got.Status)

	require.NoError(t, repo.Delete(ctx, "r2"))
	_, err = repo.GetByID(ctx, "r2")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

// A snapshot written through the load path must reproduce every record
// field-for-field after the cache is closed and reopened, timestamps
// included.
func TestSnapshotRoundTripPreservesRecords(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	original := []*entity.Request{
		{
			ID:            "r1",
			RequesterID:   "farmer-1",
			RequesterName: "Ana",
			Kind:          entity.KindPurchase,
			Item:          "NPK fertilizer",
			Quantity:      20,
			Description:   "Need 20 bags before planting",
			Status:        entity.StatusAccepted,
			TargetID:      "supplier-1",
			Response:      "In stock, 2 days",
			ContactPhone:  "555-0101",
			ContactEmail:  "ana@example.com",
			CreatedAt:     time.Date(2025, 4, 2, 9, 30, 15, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 4, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:            "r2",
			RequesterID:   "farmer-2",
			RequesterName: "Citra",
			Kind:          entity.KindAdvice,
			Description:   "Yellowing maize leaves",
			Status:        entity.StatusPending,
			ContactPhone:  "555-0102",
			ContactEmail:  "citra@example.com",
			IsCustomItem:  false,
			CreatedAt:     time.Date(2025, 4, 1, 14, 45, 30, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 4, 1, 14, 45, 30, 0, time.UTC),
		},
		{
			ID:            "r3",
			RequesterID:   "farmer-2",
			RequesterName: "Citra",
			Kind:          entity.KindPurchase,
			Item:          "drip irrigation kit",
			Quantity:      1,
			Description:   "Custom order",
			Status:        entity.StatusPending,
			ContactPhone:  "555-0102",
			ContactEmail:  "citra@example.com",
			IsCustomItem:  true,
			CreatedAt:     time.Date(2025, 3, 28, 11, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 3, 28, 11, 0, 0, 0, time.UTC),
		},
	}

	cache, err := localcache.Open(dir)
	require.NoError(t, err)

	remote := newFlakyRemote()
	for _, rec := range original {
		remote.records[rec.ID] = rec
	}

	repo := NewFallbackRequestRepository(remote, cache)
	_, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	reopened, err := localcache.Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	remote.down = true
	offline := NewFallbackRequestRepository(remote, reopened)
	records, err := offline.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(original))

	byID := make(map[string]*entity.Request, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	for _, want := range original {
		got, ok := byID[want.ID]
		require.True(t, ok, "record %s missing after reload", want.ID)
		assert.Equal(t, want, got)
	}

	// The load path sorts newest first; reloading must not disturb that.
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "r2", records[1].ID)
	assert.Equal(t, "r3", records[2].ID)
}

func TestOfflineFilteredLists(t *testing.T) {
	remote, _, repo := newTestFallback(t)
	ctx := context.Background()

	remote.records["r1"] = &entity.Request{ID: "r1", RequesterID: "farmer-1", Kind: entity.KindPurchase, Status: entity.StatusPending}
	remote.records["r2"] = &entity.Request{ID: "r2", RequesterID: "farmer-2", Kind: entity.KindAdvice, Status: entity.StatusPending}
	_, err := repo.ListAll(ctx)
	require.NoError(t, err)

	remote.down = true

	byRequester, err := repo.ListByRequester(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, byRequester, 1)
	assert.Equal(t, "r1", byRequester[0].ID)

	byKind, err := repo.ListByKind(ctx, entity.KindAdvice)
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, "r2", byKind[0].ID)
}
