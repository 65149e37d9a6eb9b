package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/internal/infrastructure/ratelimit"
	"farmlytic/pkg/errors"
	"farmlytic/pkg/logger"
)

// RequestPolicy carries the configurable validation rules. Whether an
// advice request must name a specialist up front varies by deployment,
// so it is explicit configuration rather than a hardcoded rule.
type RequestPolicy struct {
	RequireAdviceTarget bool
}

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	convRepo    repository.ConversationRepository
	profileRepo repository.ProfileRepository
	rateLimiter *ratelimit.RateLimiter
	policy      RequestPolicy
}

func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	convRepo repository.ConversationRepository,
	profileRepo repository.ProfileRepository,
	policy RequestPolicy,
) *RequestUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &RequestUseCase{
		requestRepo: requestRepo,
		convRepo:    convRepo,
		profileRepo: profileRepo,
		rateLimiter: rateLimiter,
		policy:      policy,
	}
}

type CreateRequestInput struct {
	Kind         string
	Item         string
	CustomItem   string
	Quantity     int
	Description  string
	TargetID     string
	ContactPhone string
	ContactEmail string
}

func (uc *RequestUseCase) Create(ctx context.Context, farmerID string, input CreateRequestInput) (*entity.Request, error) {
	allowed, waitTime := uc.rateLimiter.Allow(farmerID, "create_request")
	if !allowed {
		logger.Warn("Create rate limited: user %s must wait %v", farmerID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before creating another request")
	}

	// "custom" is a creation sub-mode, not a lifecycle kind: it normalizes
	// into a purchase request carrying the custom-item flag.
	var kind entity.RequestKind
	isCustom := false
	item := strings.TrimSpace(input.Item)

	switch input.Kind {
	case string(entity.KindPurchase):
		kind = entity.KindPurchase
	case string(entity.KindAdvice):
		kind = entity.KindAdvice
	case "custom":
		kind = entity.KindPurchase
		isCustom = true
		item = strings.TrimSpace(input.CustomItem)
	default:
		return nil, errors.BadRequest("Invalid request kind", nil)
	}

	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Validation("description")
	}
	if strings.TrimSpace(input.ContactPhone) == "" {
		return nil, errors.Validation("contact_phone")
	}
	if strings.TrimSpace(input.ContactEmail) == "" {
		return nil, errors.Validation("contact_email")
	}

	switch kind {
	case entity.KindPurchase:
		if item == "" {
			return nil, errors.Validation("item")
		}
	case entity.KindAdvice:
		item = ""
		if uc.policy.RequireAdviceTarget && strings.TrimSpace(input.TargetID) == "" {
			return nil, errors.Validation("target_id")
		}
	}

	requesterName := ""
	if profile, err := uc.profileRepo.GetByID(ctx, farmerID); err == nil {
		requesterName = profile.Name
	} else {
		logger.Warn("Could not resolve requester name for %s: %v", farmerID, err)
	}

	request := &entity.Request{
		RequesterID:   farmerID,
		RequesterName: requesterName,
		Kind:          kind,
		Item:          item,
		Quantity:      input.Quantity,
		Description:   input.Description,
		Status:        entity.StatusPending,
		TargetID:      strings.TrimSpace(input.TargetID),
		ContactPhone:  input.ContactPhone,
		ContactEmail:  input.ContactEmail,
		IsCustomItem:  isCustom,
		CreatedAt:     time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (uc *RequestUseCase) Get(ctx context.Context, viewerID, requestID string) (*entity.Request, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !uc.canView(ctx, viewerID, request) {
		return nil, errors.Forbidden("You don't have permission to view this request", nil)
	}

	return request, nil
}

// Respond records the responder's decision. The response text is set
// exactly once, at the pending -> accepted|rejected transition, and a
// system conversation entry authored by the responder is appended.
func (uc *RequestUseCase) Respond(ctx context.Context, responderID, requestID, decision, responseText string) (*entity.Request, error) {
	var target entity.RequestStatus
	switch decision {
	case string(entity.StatusAccepted):
		target = entity.StatusAccepted
	case string(entity.StatusRejected):
		target = entity.StatusRejected
	default:
		return nil, errors.BadRequest("Decision must be accepted or rejected", nil)
	}

	if strings.TrimSpace(responseText) == "" {
		return nil, errors.Validation("response")
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	role, err := uc.responderRole(ctx, responderID, request)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransition(target) {
		return nil, errors.InvalidStateTransition(string(request.Status), string(target))
	}

	request.Status = target
	request.Response = responseText
	if request.TargetID == "" {
		request.TargetID = responderID
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	entry := &entity.ConversationEntry{
		RequestID: request.ID,
		SenderID:  responderID,
		Sender:    role,
		Text:      responseText,
		Timestamp: time.Now(),
	}
	if err := uc.convRepo.Append(ctx, entry); err != nil {
		logger.Error("Failed to append response entry for request %s: %v", request.ID, err)
	}

	return request, nil
}

func (uc *RequestUseCase) Complete(ctx context.Context, responderID, requestID string) (*entity.Request, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.responderRole(ctx, responderID, request); err != nil {
		return nil, err
	}

	if !request.Status.CanTransition(entity.StatusCompleted) {
		return nil, errors.InvalidStateTransition(string(request.Status), string(entity.StatusCompleted))
	}

	request.Status = entity.StatusCompleted

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// Delete removes the request and its entire conversation. Deleting an
// already-deleted request fails with NOT_FOUND.
func (uc *RequestUseCase) Delete(ctx context.Context, responderID, requestID string) error {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if _, err := uc.responderRole(ctx, responderID, request); err != nil {
		return err
	}

	if err := uc.convRepo.DeleteByRequest(ctx, requestID); err != nil {
		logger.Error("Failed to delete conversation for request %s: %v", requestID, err)
	}

	return uc.requestRepo.Delete(ctx, requestID)
}

// ListFor projects the store for one viewer: farmers see their own
// requests, responders see requests of their kind targeted at them or
// still unassigned. Ordering is fixed: newest first.
func (uc *RequestUseCase) ListFor(ctx context.Context, viewerID string) ([]*entity.Request, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var requests []*entity.Request

	switch profile.Role {
	case entity.RoleFarmer:
		requests, err = uc.requestRepo.ListByRequester(ctx, viewerID)
	case entity.RoleSupplier:
		requests, err = uc.listForResponder(ctx, viewerID, entity.KindPurchase)
	case entity.RoleSpecialist:
		requests, err = uc.listForResponder(ctx, viewerID, entity.KindAdvice)
	default:
		return nil, errors.Forbidden("Unknown viewer role", nil)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

func (uc *RequestUseCase) listForResponder(ctx context.Context, viewerID string, kind entity.RequestKind) ([]*entity.Request, error) {
	all, err := uc.requestRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	var visible []*entity.Request
	for _, request := range all {
		if request.TargetID == "" || request.TargetID == viewerID {
			visible = append(visible, request)
		}
	}
	return visible, nil
}

// responderRole verifies the caller is the responding party for the
// request's kind and, when the request is already assigned, that it is
// assigned to them.
func (uc *RequestUseCase) responderRole(ctx context.Context, responderID string, request *entity.Request) (entity.Role, error) {
	profile, err := uc.profileRepo.GetByID(ctx, responderID)
	if err != nil {
		return "", err
	}

	kind, ok := profile.Role.RespondsTo()
	if !ok || kind != request.Kind {
		return "", errors.Forbidden("Only the responding party can perform this action", nil)
	}
	if request.TargetID != "" && request.TargetID != responderID {
		return "", errors.Forbidden("Request is assigned to another responder", nil)
	}

	return profile.Role, nil
}

func (uc *RequestUseCase) canView(ctx context.Context, viewerID string, request *entity.Request) bool {
	if request.RequesterID == viewerID || request.TargetID == viewerID {
		return true
	}
	if request.TargetID != "" {
		return false
	}

	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return false
	}
	kind, ok := profile.Role.RespondsTo()
	return ok && kind == request.Kind
}
