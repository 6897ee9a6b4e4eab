package auth

import (
	"time"
	"tripdash/internals/security"
)

type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=80"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// RegisterPayload drops the confirmation field before forwarding.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	ID                 string                      `json:"id"`
	Role               security.Role               `json:"role,omitempty"`
	IsApproved         bool                        `json:"isApproved"`
	SubscriptionStatus security.SubscriptionStatus `json:"subscriptionStatus"`
	ExpiresAt          time.Time                   `json:"expiresAt"`
}

type LoginPageResponse struct {
	CallbackURL string `json:"callbackUrl"`
}

func toSessionResponse(c *security.SessionClaims) *SessionResponse {
	if c == nil {
		return nil
	}
	res := &SessionResponse{
		ID:                 c.ID,
		Role:               c.Role,
		IsApproved:         c.IsApproved,
		SubscriptionStatus: c.SubscriptionStatus,
	}
	if c.ExpiresAt != nil {
		res.ExpiresAt = c.ExpiresAt.Time
	}
	return res
}
