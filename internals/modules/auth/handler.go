package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
	middle "tripdash/internals/middleware"
	"tripdash/internals/modules/proxy"
	"tripdash/internals/security"
	"tripdash/pkg/apperror"
	"tripdash/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Backend interface {
	PostJSON(ctx context.Context, endpoint string, body any) (*proxy.Response, error)
	Relay(w http.ResponseWriter, r *http.Request, resp *proxy.Response, err error)
}

// Revoker signs a session token out before it expires.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type Options struct {
	CookieName    string
	CookieSecure  bool
	FallbackPath  string
	CallbackParam string
}

type Handler struct {
	backend   Backend
	tokenSvc  *security.TokenService
	revoker   Revoker
	validator *validator.Validate
	opts      Options
	logger    *zerolog.Logger
}

// NewHandler wires the sign-in surface. revoker may be nil, in which case
// sign-out only clears the cookie.
func NewHandler(
	backend Backend,
	tokenSvc *security.TokenService,
	revoker Revoker,
	validator *validator.Validate,
	opts Options,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		backend:   backend,
		tokenSvc:  tokenSvc,
		revoker:   revoker,
		validator: validator,
		opts:      opts,
		logger:    logger,
	}
}

func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	var req LogInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "malformed request body")
		return
	}
	// validate request body
	if fields := utils.FieldErrors(h.validator.Struct(req)); len(fields) > 0 {
		utils.WriteValidationError(w, reqID, fields)
		return
	}

	resp, err := h.backend.PostJSON(ctx, "auth/login", req)
	if err != nil || resp.Status >= http.StatusMultipleChoices {
		h.backend.Relay(w, r, resp, err)
		return
	}

	env, err := resp.Envelope()
	if err != nil || !env.Success {
		h.backend.Relay(w, r, resp, nil)
		return
	}

	var identity security.Identity
	if err := json.Unmarshal(env.Data, &identity); err != nil || identity.ID == "" {
		h.logger.Error().
			Str("request_id", reqID).
			Err(err).
			Msg("backend login reply carries no identity")
		utils.WriteFailure(w, http.StatusInternalServerError, "backend returned an invalid response")
		return
	}

	token, claims, err := h.tokenSvc.IssueSessionToken(identity)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  claims.ExpiresAt.Time,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, http.StatusOK, reqID, utils.SignedIn, toSessionResponse(claims))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "malformed request body")
		return
	}
	// validate request body
	if fields := utils.FieldErrors(h.validator.Struct(req)); len(fields) > 0 {
		utils.WriteValidationError(w, reqID, fields)
		return
	}

	resp, err := h.backend.PostJSON(ctx, "auth/register", RegisterPayload{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	h.backend.Relay(w, r, resp, err)
}

func (h *Handler) LogOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	// the cookie goes regardless of what happens to the revocation
	h.clearCookie(w)

	claims, ok := middle.ClaimsFromContext(ctx)
	if ok && h.revoker != nil {
		var ttl time.Duration
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := h.revoker.Revoke(ctx, claims.RegisteredClaims.ID, ttl); err != nil {
			h.logger.Error().
				Str("request_id", reqID).
				Err(err).
				Msg("session revocation failed")
			utils.FromAppError(w, reqID, apperror.New(apperror.Dependency, "handler.auth.logout", err).
				WithMessage("could not sign out, try again"))
			return
		}
	}

	utils.WriteJSON[any](w, http.StatusOK, reqID, utils.SignedOut, nil)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	claims, _ := middle.ClaimsFromContext(ctx)
	utils.WriteJSON(w, http.StatusOK, reqID, utils.SessionRead, toSessionResponse(claims))
}

// LoginPage is the sign-in landing. Signed-in users continue straight to
// their callback.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	var callback string
	if h.opts.CallbackParam != "" {
		callback = r.URL.Query().Get(h.opts.CallbackParam)
	}
	callback = h.safeCallback(callback)

	if claims, ok := middle.ClaimsFromContext(ctx); ok && claims.Role.Valid() {
		http.Redirect(w, r, callback, http.StatusSeeOther)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, utils.SignInNeeded, LoginPageResponse{CallbackURL: callback})
}

// safeCallback only accepts same-origin absolute paths.
func (h *Handler) safeCallback(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return h.opts.FallbackPath
	}
	return raw
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
