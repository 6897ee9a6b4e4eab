package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	middle "tripdash/internals/middleware"
	"tripdash/pkg/apperror"
	"tripdash/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps how much of a backend reply is buffered.
const maxBodyBytes = 4 << 20

// Envelope is the backend's reply shape. Fields beyond these are relayed
// untouched through Response.Body.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Response is a backend reply that has been checked to be JSON.
type Response struct {
	Status int
	Body   json.RawMessage
}

func (r *Response) Envelope() (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(r.Body, &env)
	return env, err
}

type Forwarder struct {
	client  *http.Client
	baseURL *url.URL
	logger  *zerolog.Logger
}

func NewForwarder(client *http.Client, baseURL string, logger *zerolog.Logger) (*Forwarder, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	return &Forwarder{
		client:  client,
		baseURL: u,
		logger:  logger,
	}, nil
}

// Get forwards the inbound query string unchanged to endpoint and relays the
// reply.
func (f *Forwarder) Get(endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := f.Do(r.Context(), http.MethodGet, endpoint, r.URL.RawQuery, nil)
		f.Relay(w, r, resp, err)
	}
}

// PostJSON sends body as JSON to endpoint.
func (f *Forwarder) PostJSON(ctx context.Context, endpoint string, body any) (*Response, error) {
	const op string = "proxy.forwarder.post_json"

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.New(apperror.Internal, op, err)
	}
	return f.Do(ctx, http.MethodPost, endpoint, "", payload)
}

func (f *Forwarder) Do(ctx context.Context, method, endpoint, rawQuery string, body []byte) (*Response, error) {
	const op string = "proxy.forwarder.do"

	target := f.baseURL.JoinPath(endpoint)
	target.RawQuery = rawQuery

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, apperror.New(apperror.Internal, op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		req.Header.Set(middleware.RequestIDHeader, reqID)
	}
	if claims, ok := middle.ClaimsFromContext(ctx); ok {
		req.Header.Set("X-User-ID", claims.ID)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &apperror.Error{
			Kind:    apperror.Dependency,
			Op:      op,
			Err:     err,
			Message: utils.BackendFailed,
		}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, &apperror.Error{
			Kind:    apperror.Dependency,
			Op:      op,
			Err:     err,
			Message: utils.BackendFailed,
		}
	}
	if !json.Valid(raw) {
		return nil, &apperror.Error{
			Kind:    apperror.Internal,
			Op:      op,
			Err:     fmt.Errorf("backend %s %s returned non-JSON body (status %d)", method, endpoint, res.StatusCode),
			Message: "backend returned an invalid response",
		}
	}

	return &Response{Status: res.StatusCode, Body: raw}, nil
}

// Relay writes a backend reply through unchanged, or the failure envelope
// with status 500 when err is set.
func (f *Forwarder) Relay(w http.ResponseWriter, r *http.Request, resp *Response, err error) {
	if err != nil {
		f.logger.Error().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Err(err).
			Msg("backend request failed")

		message := utils.BackendFailed
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
		utils.WriteFailure(w, http.StatusInternalServerError, message)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		f.logger.Error().Err(err).Msg("error in relaying backend response to client")
	}
}
