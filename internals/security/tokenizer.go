package security

import (
	"errors"
	"time"
	"tripdash/config"
	"tripdash/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenService(authCfg *config.AuthConfig, issuer string) (*TokenService, error) {
	if authCfg == nil || authCfg.Secret == "" {
		return nil, errors.New("auth secret is required")
	}
	return &TokenService{
		secret: []byte(authCfg.Secret),
		ttl:    authCfg.SessionTTL,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (ts *TokenService) IssueSessionToken(id Identity) (string, *SessionClaims, error) {
	const op string = "service.token.issue_session_token"

	if id.ID == "" {
		return "", nil, &apperror.Error{
			Kind:    apperror.InvalidInput,
			Op:      op,
			Message: "identity has no id",
		}
	}

	status := id.SubscriptionStatus
	if !status.Valid() {
		status = SubscriptionNone
	}

	now := ts.now()
	claims := &SessionClaims{
		ID:                 id.ID,
		Role:               id.Role,
		IsApproved:         id.IsApproved,
		SubscriptionStatus: status,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.ID,
			Issuer:    ts.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(ts.secret)
	if err != nil {
		return "", nil, apperror.New(apperror.Internal, op, err)
	}

	return signedToken, claims, nil
}

func (ts *TokenService) ValidateSessionToken(sessionToken string) (*SessionClaims, error) {
	const op string = "service.token.validate_session_token"

	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(
		sessionToken,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrSignatureInvalid
			}
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)

	if err != nil || !token.Valid {
		return nil, &apperror.Error{
			Kind:    apperror.Unauthenticated,
			Op:      op,
			Err:     err,
			Message: "invalid session token",
		}
	}

	return claims, nil
}
