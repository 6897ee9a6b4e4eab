package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKindUnwrapsChains(t *testing.T) {
	base := New(Unauthenticated, "security.token.validate", errors.New("signature is invalid"))
	wrapped := fmt.Errorf("auth: %w", base)

	assert.True(t, IsKind(wrapped, Unauthenticated))
	assert.False(t, IsKind(wrapped, Forbidden))
	assert.False(t, IsKind(errors.New("plain"), Unauthenticated))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		Unauthenticated: http.StatusUnauthorized,
		Forbidden:       http.StatusForbidden,
		InvalidInput:    http.StatusBadRequest,
		Dependency:      http.StatusBadGateway,
		Kind("bogus"):   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(&Error{Kind: kind}), string(kind))
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestWithErrCapturesStackForInternal(t *testing.T) {
	e := (&Error{Kind: Internal, Op: "proxy.forward"}).WithErr(errors.New("dial tcp"))
	assert.NotEmpty(t, e.Stack)
	assert.Equal(t, "proxy.forward: dial tcp", e.Error())

	auth := (&Error{Kind: Unauthenticated}).WithErr(errors.New("expired"))
	assert.Empty(t, auth.Stack)
}
