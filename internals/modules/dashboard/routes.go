package dashboard

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Page)
	r.Get("/*", h.Page)

	return r
}

/*
- GET: /dashboard, /dashboard/*  -> page model for the signed-in user
	req auth : gate (redirects, never JSON errors)
	resp : PageResponse
*/
