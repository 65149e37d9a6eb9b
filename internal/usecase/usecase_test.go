package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmlytic/internal/domain/entity"
	"farmlytic/pkg/errors"
)

// In-memory repositories backing the use case tests.

type memRequestRepo struct {
	records map[string]*entity.Request
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{records: make(map[string]*entity.Request)}
}

func (r *memRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	r.records[request.ID] = request
	return nil
}

func (r *memRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	request, ok := r.records[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	return request, nil
}

func (r *memRequestRepo) Update(ctx context.Context, request *entity.Request) error {
	if _, ok := r.records[request.ID]; !ok {
		return errors.NotFound("Request", nil)
	}
	r.records[request.ID] = request
	return nil
}

func (r *memRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return errors.NotFound("Request", nil)
	}
	delete(r.records, id)
	return nil
}

func (r *memRequestRepo) ListAll(ctx context.Context) ([]*entity.Request, error) {
	var out []*entity.Request
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRequestRepo) ListByRequester(ctx context.Context, farmerID string) ([]*entity.Request, error) {
	var out []*entity.Request
	for _, rec := range r.records {
		if rec.RequesterID == farmerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRequestRepo) ListByKind(ctx context.Context, kind entity.RequestKind) ([]*entity.Request, error) {
	var out []*entity.Request
	for _, rec := range r.records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memConversationRepo struct {
	entries map[string][]*entity.ConversationEntry
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{entries: make(map[string][]*entity.ConversationEntry)}
}

func (r *memConversationRepo) Append(ctx context.Context, entry *entity.ConversationEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries[entry.RequestID] = append(r.entries[entry.RequestID], entry)
	return nil
}

func (r *memConversationRepo) ListByRequest(ctx context.Context, requestID string) ([]*entity.ConversationEntry, error) {
	return r.entries[requestID], nil
}

func (r *memConversationRepo) DeleteByRequest(ctx context.Context, requestID string) error {
	delete(r.entries, requestID)
	return nil
}

type memProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newMemProfileRepo(profiles ...*entity.Profile) *memProfileRepo {
	repo := &memProfileRepo{profiles: make(map[string]*entity.Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *memProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *memProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return profile, nil
}

func (r *memProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *memProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *memProfileRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func testProfiles() *memProfileRepo {
	return newMemProfileRepo(
		&entity.Profile{ID: "farmer-1", Email: "farmer@example.com", Name: "Ana", Role: entity.RoleFarmer},
		&entity.Profile{ID: "supplier-1", Email: "supplier@example.com", Name: "Budi", Role: entity.RoleSupplier},
		&entity.Profile{ID: "supplier-2", Email: "supplier2@example.com", Name: "Citra", Role: entity.RoleSupplier},
		&entity.Profile{ID: "specialist-1", Email: "specialist@example.com", Name: "Dewi", Role: entity.RoleSpecialist},
	)
}
