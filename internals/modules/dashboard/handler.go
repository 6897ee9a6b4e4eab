package dashboard

import (
	"net/http"
	middle "tripdash/internals/middleware"
	"tripdash/internals/security"
	"tripdash/pkg/apperror"
	"tripdash/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
)

type UserSummary struct {
	ID                 string                      `json:"id"`
	Role               security.Role               `json:"role"`
	IsApproved         bool                        `json:"isApproved"`
	SubscriptionStatus security.SubscriptionStatus `json:"subscriptionStatus"`
}

type PageResponse struct {
	Path string      `json:"path"`
	User UserSummary `json:"user"`
	Menu []MenuItem  `json:"menu"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Page serves any dashboard path the gate let through.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	claims, ok := middle.ClaimsFromContext(ctx)
	if !ok {
		// only reachable if the gate is not mounted in front
		utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthenticated, utils.SignInNeeded)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, utils.PageRendered, PageResponse{
		Path: r.URL.Path,
		User: UserSummary{
			ID:                 claims.ID,
			Role:               claims.Role,
			IsApproved:         claims.IsApproved,
			SubscriptionStatus: claims.SubscriptionStatus,
		},
		Menu: MenuFor(claims.Role),
	})
}
