package event

import (
	"context"
	"encoding/json"
	"net/http"
	middle "tripdash/internals/middleware"
	"tripdash/internals/modules/proxy"
	"tripdash/pkg/apperror"
	"tripdash/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Backend interface {
	PostJSON(ctx context.Context, endpoint string, body any) (*proxy.Response, error)
	Relay(w http.ResponseWriter, r *http.Request, resp *proxy.Response, err error)
}

type Handler struct {
	backend   Backend
	validator *validator.Validate
}

func NewHandler(backend Backend, validator *validator.Validate) *Handler {
	return &Handler{
		backend:   backend,
		validator: validator,
	}
}

// Validate runs the field rules of the host-event form.
func (req HostEventRequest) Validate(v *validator.Validate) []utils.FieldError {
	return utils.FieldErrors(v.Struct(req))
}

func (h *Handler) Host(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	claims, ok := middle.ClaimsFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthenticated, utils.SignInNeeded)
		return
	}

	// decode request body
	var req HostEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "malformed request body")
		return
	}

	// validate request body
	if fields := req.Validate(h.validator); len(fields) > 0 {
		utils.WriteValidationError(w, reqID, fields)
		return
	}

	resp, err := h.backend.PostJSON(ctx, "events", HostEventPayload{
		HostID:      claims.ID,
		Title:       req.Title,
		Destination: req.Destination,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
	})
	h.backend.Relay(w, r, resp, err)
}
