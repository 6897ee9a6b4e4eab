package middle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tripdash/internals/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareAttachesClaimsFromCookie(t *testing.T) {
	ts := newTokenService(t)
	token, _ := issue(t, ts, security.RoleAdmin)
	mw := NewAuthMiddleware(ts, testCookie, nil, nopLogger())

	next := &captureClaims{}
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	serve(mw.Handle(next), req)

	require.True(t, next.ok)
	assert.Equal(t, security.RoleAdmin, next.claims.Role)
	assert.Equal(t, "u-1", next.claims.ID)
}

func TestAuthMiddlewareAttachesClaimsFromBearer(t *testing.T) {
	ts := newTokenService(t)
	token, _ := issue(t, ts, security.RoleUser)
	mw := NewAuthMiddleware(ts, testCookie, nil, nopLogger())

	next := &captureClaims{}
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	serve(mw.Handle(next), req)

	require.True(t, next.ok)
	assert.Equal(t, security.RoleUser, next.claims.Role)
}

func TestAuthMiddlewarePassesThroughWithoutClaims(t *testing.T) {
	ts := newTokenService(t)
	good, _ := issue(t, ts, security.RoleUser)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"garbage cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: testCookie, Value: "garbage"})
		}},
		{"tampered bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+good+"x") }},
		{"basic auth header", func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") }},
		{"empty bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") }},
	}

	mw := NewAuthMiddleware(ts, testCookie, nil, nopLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &captureClaims{}
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			tt.setup(req)

			rec := serve(mw.Handle(next), req)

			assert.True(t, next.called)
			assert.False(t, next.ok)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestAuthMiddlewareRevocation(t *testing.T) {
	ts := newTokenService(t)
	token, claims := issue(t, ts, security.RoleUser)

	tests := []struct {
		name   string
		store  *fakeRevocation
		wantOK bool
	}{
		{"not revoked", &fakeRevocation{revoked: map[string]bool{}}, true},
		{"revoked", &fakeRevocation{revoked: map[string]bool{claims.RegisteredClaims.ID: true}}, false},
		{"store unavailable", &fakeRevocation{err: errStoreDown}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(ts, testCookie, tt.store, nopLogger())
			next := &captureClaims{}
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

			serve(mw.Handle(next), req)

			assert.True(t, next.called)
			assert.Equal(t, tt.wantOK, next.ok)
		})
	}
}
