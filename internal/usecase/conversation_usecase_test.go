package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlytic/internal/domain/entity"
	"farmlytic/pkg/errors"
)

func newTestConversationUseCase(t *testing.T) (*ConversationUseCase, *RequestUseCase) {
	requestRepo := newMemRequestRepo()
	convRepo := newMemConversationRepo()
	profiles := testProfiles()

	requestUC := NewRequestUseCase(requestRepo, convRepo, profiles, RequestPolicy{})
	convUC := NewConversationUseCase(convRepo, requestRepo, profiles)
	return convUC, requestUC
}

func createPurchase(t *testing.T, requestUC *RequestUseCase) *entity.Request {
	t.Helper()
	request, err := requestUC.Create(context.Background(), "farmer-1", CreateRequestInput{
		Kind:         "purchase",
		Item:         "seeds",
		Description:  "desc",
		ContactPhone: "0812",
		ContactEmail: "a@b.c",
	})
	require.NoError(t, err)
	return request
}

func TestAppendAndGet(t *testing.T) {
	convUC, requestUC := newTestConversationUseCase(t)
	ctx := context.Background()

	request := createPurchase(t, requestUC)

	first, err := convUC.Append(ctx, "farmer-1", request.ID, "Is this still available?")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, first.Sender)
	assert.NotEmpty(t, first.ID)

	second, err := convUC.Append(ctx, "supplier-1", request.ID, "Yes, 20 bags in stock")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupplier, second.Sender)

	entries, err := convUC.Get(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Is this still available?", entries[0].Text)
	assert.Equal(t, "Yes, 20 bags in stock", entries[1].Text)
}

func TestAppendRejectsEmptyText(t *testing.T) {
	convUC, requestUC := newTestConversationUseCase(t)
	request := createPurchase(t, requestUC)

	_, err := convUC.Append(context.Background(), "farmer-1", request.ID, "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestAppendUnknownRequest(t *testing.T) {
	convUC, _ := newTestConversationUseCase(t)

	_, err := convUC.Append(context.Background(), "farmer-1", "no-such-id", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestAppendNonParticipant(t *testing.T) {
	convUC, requestUC := newTestConversationUseCase(t)
	request := createPurchase(t, requestUC)

	// A specialist has no standing on a purchase request.
	_, err := convUC.Append(context.Background(), "specialist-1", request.ID, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestAppendAssignedRequestLocksOutOthers(t *testing.T) {
	convUC, requestUC := newTestConversationUseCase(t)
	ctx := context.Background()

	request := createPurchase(t, requestUC)
	_, err := requestUC.Respond(ctx, "supplier-1", request.ID, "accepted", "In stock")
	require.NoError(t, err)

	_, err = convUC.Append(ctx, "supplier-2", request.ID, "I can help too")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = convUC.Append(ctx, "supplier-1", request.ID, "Ready to ship")
	assert.NoError(t, err)
}

func TestGetUnknownRequestYieldsEmpty(t *testing.T) {
	convUC, _ := newTestConversationUseCase(t)

	entries, err := convUC.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
