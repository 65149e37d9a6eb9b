package entity

import (
	"time"
)

type RequestKind string

const (
	KindPurchase RequestKind = "purchase"
	KindAdvice   RequestKind = "advice"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusRejected  RequestStatus = "rejected"
	StatusCompleted RequestStatus = "completed"
)

// Request is one ask from a farmer to a responding party: a supplier for
// purchase requests, a specialist for advice requests.
type Request struct {
	ID            string        `json:"id" firestore:"id"`
	RequesterID   string        `json:"farmer_id" firestore:"farmer_id"`
	RequesterName string        `json:"farmer_name,omitempty" firestore:"farmer_name,omitempty"`
	Kind          RequestKind   `json:"kind" firestore:"kind"`
	Item          string        `json:"item,omitempty" firestore:"item,omitempty"`
	Quantity      int           `json:"quantity,omitempty" firestore:"quantity,omitempty"`
	Description   string        `json:"description" firestore:"description"`
	Status        RequestStatus `json:"status" firestore:"status"`
	TargetID      string        `json:"target_id,omitempty" firestore:"target_id,omitempty"`
	Response      string        `json:"response,omitempty" firestore:"response,omitempty"`
	ContactPhone  string        `json:"contact_phone" firestore:"contact_phone"`
	ContactEmail  string        `json:"contact_email" firestore:"contact_email"`
	IsCustomItem  bool          `json:"is_custom" firestore:"is_custom"`
	CreatedAt     time.Time     `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" firestore:"updated_at"`
}

// CanTransition reports whether a status change is permitted. The status
// order is pending -> accepted|rejected and accepted -> completed;
// rejected and completed are terminal.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted:
		return to == StatusCompleted
	default:
		return false
	}
}

// Terminal reports whether no further status change is permitted.
func (s RequestStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}
