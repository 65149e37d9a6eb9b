package usecase

import (
	"context"
	"strings"
	"time"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/internal/infrastructure/ratelimit"
	"farmlytic/pkg/errors"
	"farmlytic/pkg/logger"
)

type ConversationUseCase struct {
	convRepo    repository.ConversationRepository
	requestRepo repository.RequestRepository
	profileRepo repository.ProfileRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewConversationUseCase(
	convRepo repository.ConversationRepository,
	requestRepo repository.RequestRepository,
	profileRepo repository.ProfileRepository,
) *ConversationUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ConversationUseCase{
		convRepo:    convRepo,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		rateLimiter: rateLimiter,
	}
}

// Append attaches a message to an existing request. The sender must be a
// participant: the requester or the responding party.
func (uc *ConversationUseCase) Append(ctx context.Context, senderID, requestID, text string) (*entity.ConversationEntry, error) {
	allowed, waitTime := uc.rateLimiter.Allow(senderID, "append_message")
	if !allowed {
		logger.Warn("Append rate limited: user %s must wait %v", senderID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message")
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.Validation("text")
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(profile, request, senderID) {
		return nil, errors.Forbidden("Only participants can message on this request", nil)
	}

	entry := &entity.ConversationEntry{
		RequestID: requestID,
		SenderID:  senderID,
		Sender:    profile.Role,
		Text:      text,
		Timestamp: time.Now(),
	}

	if err := uc.convRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Get returns the conversation in insertion order. An unknown request ID
// yields an empty conversation, never an error.
func (uc *ConversationUseCase) Get(ctx context.Context, requestID string) ([]*entity.ConversationEntry, error) {
	entries, err := uc.convRepo.ListByRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []*entity.ConversationEntry{}, nil
		}
		return nil, err
	}
	if entries == nil {
		entries = []*entity.ConversationEntry{}
	}
	return entries, nil
}

func isParticipant(profile *entity.Profile, request *entity.Request, senderID string) bool {
	if request.RequesterID == senderID || request.TargetID == senderID {
		return true
	}
	if request.TargetID != "" {
		return false
	}
	kind, ok := profile.Role.RespondsTo()
	return ok && kind == request.Kind
}
