package middle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tripdash/config"
	"tripdash/internals/security"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testCookie = "tripdash.session"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func newTokenService(t *testing.T) *security.TokenService {
	t.Helper()
	ts, err := security.NewTokenService(&config.AuthConfig{Secret: testSecret, SessionTTL: time.Hour}, "test")
	require.NoError(t, err)
	return ts
}

func issue(t *testing.T, ts *security.TokenService, role security.Role) (string, *security.SessionClaims) {
	t.Helper()
	token, claims, err := ts.IssueSessionToken(security.Identity{
		ID:                 "u-1",
		Role:               role,
		SubscriptionStatus: security.SubscriptionActive,
	})
	require.NoError(t, err)
	return token, claims
}

// captureClaims records what the authentication layer attached.
type captureClaims struct {
	claims *security.SessionClaims
	ok     bool
	called bool
}

func (c *captureClaims) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.claims, c.ok = ClaimsFromContext(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type fakeRevocation struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocation) IsRevoked(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[id], nil
}

var errStoreDown = errors.New("redis: connection refused")

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}
