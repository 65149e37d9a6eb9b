package entity

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleFarmer     Role = "farmer"
	RoleSupplier   Role = "supplier"
	RoleSpecialist Role = "specialist"
)

// ParseRole maps a stored role tag onto the closed set of roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleSupplier, RoleSpecialist:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RespondsTo returns the request kind this role is empowered to answer.
// Farmers raise requests and answer none.
func (r Role) RespondsTo() (RequestKind, bool) {
	switch r {
	case RoleSupplier:
		return KindPurchase, true
	case RoleSpecialist:
		return KindAdvice, true
	default:
		return "", false
	}
}

type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Role      Role      `json:"role" firestore:"role"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}
