package middle

/**
- Work of this file -> Auth package:
	- Reads the session token (cookie first, then Bearer header)
	- Validates it and checks revocation
	- Stores claims in context
	- Exposes a helper to retrieve claims

Requests are never rejected here. A request without usable claims simply
continues without them and the gate / RequireRole decide what to do.
**/

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"tripdash/internals/security"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type claimsCtxKeyType struct{}

var claimsCtxKey = claimsCtxKeyType{}

var (
	errNoToken      = errors.New("no session token")
	errTokenRevoked = errors.New("session token revoked")
)

// RevocationChecker reports whether a session token id has been signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	tokenSvc   *security.TokenService
	cookieName string
	revocation RevocationChecker
	logger     *zerolog.Logger
}

// NewAuthMiddleware builds the authentication layer. revocation may be nil.
func NewAuthMiddleware(tokenSvc *security.TokenService, cookieName string, revocation RevocationChecker, logger *zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cookieName,
		revocation: revocation,
		logger:     logger,
	}
}

func (a *AuthMiddleware) Handle(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := a.authenticate(r)
		if err != nil {
			if !errors.Is(err, errNoToken) {
				a.logger.Debug().
					Str("request_id", middleware.GetReqID(ctx)).
					Str("path", r.URL.Path).
					Err(err).
					Msg("session token rejected")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
	}

	return http.HandlerFunc(fn)
}

func (a *AuthMiddleware) authenticate(r *http.Request) (*security.SessionClaims, error) {
	token, err := a.extractToken(r)
	if err != nil {
		return nil, err
	}

	claims, err := a.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	if a.revocation != nil {
		revoked, err := a.revocation.IsRevoked(r.Context(), claims.RegisteredClaims.ID)
		if err != nil {
			// store unreachable: treat the token as unusable
			a.logger.Error().Err(err).Msg("session revocation lookup failed")
			return nil, err
		}
		if revoked {
			return nil, errTokenRevoked
		}
	}

	return claims, nil
}

func (a *AuthMiddleware) extractToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(a.cookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return extractBearerToken(r)
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")

	if authHeader == "" {
		return "", errNoToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid Authorization header")
	}

	return parts[1], nil
}

func WithClaims(ctx context.Context, claims *security.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*security.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*security.SessionClaims)
	return claims, ok && claims != nil
}
