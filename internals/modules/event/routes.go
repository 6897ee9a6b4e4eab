package event

import (
	middle "tripdash/internals/middleware"
	"tripdash/internals/security"

	"github.com/go-chi/chi/v5"
)

func Register(r chi.Router, h *Handler) {
	r.With(middle.RequireRole(security.RoleUser)).Post("/events", h.Host)
}

/*
- POST: /api/events  -> host an event
	req auth : USER
	body : HostEventRequest
	resp : backend envelope, or 400 with field/rule details
*/
