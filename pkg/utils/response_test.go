package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"tripdash/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   apperror.Kind
	}{
		{
			name:       "unauthenticated",
			err:        &apperror.Error{Kind: apperror.Unauthenticated, Message: "sign in to continue"},
			wantStatus: http.StatusUnauthorized,
			wantKind:   apperror.Unauthenticated,
		},
		{
			name:       "wrapped forbidden",
			err:        fmt.Errorf("route: %w", &apperror.Error{Kind: apperror.Forbidden}),
			wantStatus: http.StatusForbidden,
			wantKind:   apperror.Forbidden,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   apperror.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromAppError(rec, "req-1", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "req-1", body.RequestID)
			assert.Equal(t, tt.wantKind, body.Error.Kind)
		})
	}
}
