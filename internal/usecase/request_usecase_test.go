package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlytic/internal/domain/entity"
	"farmlytic/pkg/errors"
)

func newTestRequestUseCase(policy RequestPolicy) (*RequestUseCase, *memRequestRepo, *memConversationRepo) {
	requestRepo := newMemRequestRepo()
	convRepo := newMemConversationRepo()
	uc := NewRequestUseCase(requestRepo, convRepo, testProfiles(), policy)
	return uc, requestRepo, convRepo
}

func TestCreatePurchaseRequest(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})

	request, err := uc.Create(context.Background(), "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "NPK fertilizer",
		Quantity:     10,
		Description:  "Need fertilizer for the east field",
		ContactPhone: "08123456789",
		ContactEmail: "farmer@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, request.ID)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, entity.KindPurchase, request.Kind)
	assert.Equal(t, "farmer-1", request.RequesterID)
	assert.Equal(t, "Ana", request.RequesterName)
	assert.False(t, request.IsCustomItem)
	assert.False(t, request.CreatedAt.IsZero())
}

func TestCreateCustomRequestNormalizesToPurchase(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})

	request, err := uc.Create(context.Background(), "farmer-1", CreateRequestInput{
		Kind:         "custom",
		CustomItem:   "drip irrigation kit",
		Description:  "Not in the catalog",
		ContactPhone: "08123456789",
		ContactEmail: "farmer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.KindPurchase, request.Kind)
	assert.True(t, request.IsCustomItem)
	assert.Equal(t, "drip irrigation kit", request.Item)
}

func TestCreateValidation(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	base := CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	}

	missingItem := base
	missingItem.Item = "  "
	_, err := uc.Create(ctx, "farmer-1", missingItem)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Contains(t, err.Error(), "item")

	missingDesc := base
	missingDesc.Description = ""
	_, err = uc.Create(ctx, "farmer-1", missingDesc)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	missingPhone := base
	missingPhone.ContactPhone = ""
	_, err = uc.Create(ctx, "farmer-1", missingPhone)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	missingEmail := base
	missingEmail.ContactEmail = ""
	_, err = uc.Create(ctx, "farmer-1", missingEmail)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	badKind := base
	badKind.Kind = "rental"
	_, err = uc.Create(ctx, "farmer-1", badKind)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateAdviceTargetPolicy(t *testing.T) {
	input := CreateRequestInput{
		Kind:         "advice",
		Description:  "Pests in corn",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	}

	strict, _, _ := newTestRequestUseCase(RequestPolicy{RequireAdviceTarget: true})
	_, err := strict.Create(context.Background(), "farmer-1", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Contains(t, err.Error(), "target_id")

	relaxed, _, _ := newTestRequestUseCase(RequestPolicy{RequireAdviceTarget: false})
	request, err := relaxed.Create(context.Background(), "farmer-1", input)
	require.NoError(t, err)
	assert.Empty(t, request.TargetID)
}

// The full advice lifecycle: create, accept with a response, complete.
func TestAdviceRequestLifecycle(t *testing.T) {
	uc, _, convRepo := newTestRequestUseCase(RequestPolicy{RequireAdviceTarget: true})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "advice",
		Description:  "Pests in corn, leaves turning yellow",
		TargetID:     "specialist-1",
		ContactPhone: "08123456789",
		ContactEmail: "farmer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)

	accepted, err := uc.Respond(ctx, "specialist-1", request.ID, "accepted", "Use neem oil twice a week")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, accepted.Status)
	assert.Equal(t, "Use neem oil twice a week", accepted.Response)

	// The response is mirrored into the conversation, attributed to the
	// responder.
	entries, err := convRepo.ListByRequest(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "specialist-1", entries[0].SenderID)
	assert.Equal(t, entity.RoleSpecialist, entries[0].Sender)
	assert.Equal(t, "Use neem oil twice a week", entries[0].Text)

	completed, err := uc.Complete(ctx, "specialist-1", request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)

	// Completed is terminal.
	_, err = uc.Respond(ctx, "specialist-1", request.ID, "rejected", "changed my mind")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE_TRANSITION"))
}

func TestRespondValidation(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Respond(ctx, "supplier-1", request.ID, "maybe", "text")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Respond(ctx, "supplier-1", request.ID, "accepted", "   ")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.Respond(ctx, "supplier-1", "no-such-id", "accepted", "ok")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestRespondRoleChecks(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	// A specialist cannot answer a purchase request.
	_, err = uc.Respond(ctx, "specialist-1", request.ID, "accepted", "ok")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// The farmer cannot answer their own request.
	_, err = uc.Respond(ctx, "farmer-1", request.ID, "accepted", "ok")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// First supplier to respond claims the request.
	accepted, err := uc.Respond(ctx, "supplier-1", request.ID, "accepted", "In stock, 2 days")
	require.NoError(t, err)
	assert.Equal(t, "supplier-1", accepted.TargetID)

	// A different supplier cannot touch it afterwards.
	_, err = uc.Complete(ctx, "supplier-2", request.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestRejectedIsTerminal(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Respond(ctx, "supplier-1", request.ID, "rejected", "Out of stock")
	require.NoError(t, err)

	_, err = uc.Respond(ctx, "supplier-1", request.ID, "accepted", "Found some after all")
	assert.True(t, errors.Is(err, "INVALID_STATE_TRANSITION"))

	_, err = uc.Complete(ctx, "supplier-1", request.ID)
	assert.True(t, errors.Is(err, "INVALID_STATE_TRANSITION"))
}

func TestCompleteRequiresAccepted(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Complete(ctx, "supplier-1", request.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE_TRANSITION"))
}

func TestDeleteRemovesConversation(t *testing.T) {
	uc, requestRepo, convRepo := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Respond(ctx, "supplier-1", request.ID, "accepted", "In stock")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "supplier-1", request.ID))

	_, err = requestRepo.GetByID(ctx, request.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	entries, err := convRepo.ListByRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting again fails cleanly.
	err = uc.Delete(ctx, "supplier-1", request.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListForFarmer(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	first, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "first",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)
	first.CreatedAt = first.CreatedAt.Add(-1) // force distinct ordering

	_, err = uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "advice",
		Description:  "second",
		TargetID:     "specialist-1",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	requests, err := uc.ListFor(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "second", requests[0].Description)
	assert.Equal(t, "first", requests[1].Description)
}

func TestListForResponderFiltersByKindAndTarget(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	_, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "open purchase",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "pump",
		Description:  "assigned elsewhere",
		TargetID:     "supplier-2",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "advice",
		Description:  "advice for specialist",
		TargetID:     "specialist-1",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	// supplier-1 sees only the unassigned purchase request.
	requests, err := uc.ListFor(ctx, "supplier-1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "open purchase", requests[0].Description)

	// supplier-2 sees the open one plus the one assigned to them.
	requests, err = uc.ListFor(ctx, "supplier-2")
	require.NoError(t, err)
	assert.Len(t, requests, 2)

	// The specialist sees only advice requests.
	requests, err = uc.ListFor(ctx, "specialist-1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, entity.KindAdvice, requests[0].Kind)
}

func TestGetEnforcesVisibility(t *testing.T) {
	uc, _, _ := newTestRequestUseCase(RequestPolicy{})
	ctx := context.Background()

	request, err := uc.Create(ctx, "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		TargetID:     "supplier-1",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)

	_, err = uc.Get(ctx, "farmer-1", request.ID)
	assert.NoError(t, err)

	_, err = uc.Get(ctx, "supplier-1", request.ID)
	assert.NoError(t, err)

	_, err = uc.Get(ctx, "supplier-2", request.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
