package seed

import (
	"time"

	"farmlytic/internal/domain/entity"
)

// SampleRequests is the fixed built-in set used when the remote source is
// unreachable and no local snapshot has ever been written, so first-run
// viewers never see an empty dashboard.
func SampleRequests() []*entity.Request {
	return []*entity.Request{
		{
			ID:            "sample-req-1",
			RequesterID:   "sample-farmer-1",
			RequesterName: "Demo Farmer",
			Kind:          entity.KindPurchase,
			Item:          "NPK Fertilizer",
			Quantity:      20,
			Description:   "Need 20 bags of NPK fertilizer for the north field before planting.",
			Status:        entity.StatusPending,
			ContactPhone:  "555-0101",
			ContactEmail:  "demo.farmer@farmlytic.example",
			CreatedAt:     time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:            "sample-req-2",
			RequesterID:   "sample-farmer-1",
			RequesterName: "Demo Farmer",
			Kind:          entity.KindAdvice,
			Description:   "Yellowing leaves on maize, suspect nitrogen deficiency. What should I check first?",
			Status:        entity.StatusAccepted,
			TargetID:      "sample-specialist-1",
			Response:      "Start with a soil test; yellowing from the leaf tip inward usually means nitrogen.",
			ContactPhone:  "555-0101",
			ContactEmail:  "demo.farmer@farmlytic.example",
			CreatedAt:     time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 3, 11, 8, 15, 0, 0, time.UTC),
		},
		{
			ID:            "sample-req-3",
			RequesterID:   "sample-farmer-2",
			RequesterName: "Second Farmer",
			Kind:          entity.KindPurchase,
			Item:          "Drip irrigation kit",
			Quantity:      1,
			Description:   "Looking for a drip irrigation kit covering roughly two acres.",
			Status:        entity.StatusPending,
			IsCustomItem:  true,
			ContactPhone:  "555-0102",
			ContactEmail:  "second.farmer@farmlytic.example",
			CreatedAt:     time.Date(2025, 3, 8, 11, 45, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 3, 8, 11, 45, 0, 0, time.UTC),
		},
	}
}

// SampleConversations returns the entries attached to the sample set,
// keyed by request ID.
func SampleConversations() map[string][]*entity.ConversationEntry {
	return map[string][]*entity.ConversationEntry{
		"sample-req-2": {
			{
				ID:        "sample-msg-1",
				RequestID: "sample-req-2",
				SenderID:  "sample-specialist-1",
				Sender:    entity.RoleSpecialist,
				Text:      "Start with a soil test; yellowing from the leaf tip inward usually means nitrogen.",
				Timestamp: time.Date(2025, 3, 11, 8, 15, 0, 0, time.UTC),
			},
		},
	}
}
