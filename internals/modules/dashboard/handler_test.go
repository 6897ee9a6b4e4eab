package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	middle "tripdash/internals/middleware"
	"tripdash/internals/security"
	"tripdash/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRendersMenuForClaims(t *testing.T) {
	r := Routes(NewHandler())

	req := httptest.NewRequest(http.MethodGet, "/events/host", nil)
	req = req.WithContext(middle.WithClaims(req.Context(), &security.SessionClaims{
		ID:                 "u-7",
		Role:               security.RoleUser,
		SubscriptionStatus: security.SubscriptionTrial,
	}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body utils.SuccessResponse[PageResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "u-7", body.Data.User.ID)
	assert.Equal(t, security.SubscriptionTrial, body.Data.User.SubscriptionStatus)
	assert.Equal(t, MenuFor(security.RoleUser), body.Data.Menu)
}

func TestPageWithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	Routes(NewHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
