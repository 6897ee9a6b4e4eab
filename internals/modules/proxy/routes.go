package proxy

import (
	middle "tripdash/internals/middleware"
	"tripdash/internals/security"

	"github.com/go-chi/chi/v5"
)

// Register mounts the read-only proxy routes on an /api router.
func Register(r chi.Router, f *Forwarder) {
	r.Get("/search", f.Get("search"))
	r.Get("/matches", f.Get("matches"))
	r.Get("/trips", f.Get("trips"))
	r.Get("/events", f.Get("events"))

	r.With(middle.RequireRole(security.RoleAdmin)).Get("/users", f.Get("users"))
}

/*
- GET: /api/search?...   -> backend GET /search?...
- GET: /api/matches?...  -> backend GET /matches?...
- GET: /api/trips?...    -> backend GET /trips?...
- GET: /api/events?...   -> backend GET /events?...
- GET: /api/users?...    -> backend GET /users?...   (ADMIN only)

	query string forwarded unchanged, status and JSON body relayed 1:1,
	transport failure -> 500 { success: false, message }
*/
