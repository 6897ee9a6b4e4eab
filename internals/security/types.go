package security

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is a role the gate recognises.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionTrial   SubscriptionStatus = "TRIAL"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
	SubscriptionNone    SubscriptionStatus = "NONE"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrial, SubscriptionExpired, SubscriptionNone:
		return true
	}
	return false
}

// Identity is what the backend returns for a signed-in user.
type Identity struct {
	ID                 string             `json:"id"`
	Role               Role               `json:"role"`
	IsApproved         bool               `json:"isApproved"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
}

// SessionClaims are read-only once attached to a request.
type SessionClaims struct {
	ID                 string             `json:"id"`
	Role               Role               `json:"role,omitempty"`
	IsApproved         bool               `json:"isApproved"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	jwt.RegisteredClaims
}
