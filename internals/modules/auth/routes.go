package auth

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.LogIn)
	r.Post("/register", h.Register)
	r.Post("/logout", h.LogOut)
	r.Get("/session", h.Session)

	return r
}

/*
- POST: /api/auth/login  -> sign in
	req auth : false
	body : LogInRequest
	resp : SessionResponse + session cookie

- POST: /api/auth/register -> create account (backend)
	req auth : false
	body : RegisterRequest
	resp : backend envelope

- POST: /api/auth/logout -> sign out
	req auth : optional
	resp : ok, cookie cleared, token revoked when a store is configured

- GET: /api/auth/session -> current session
	resp : SessionResponse or null

- GET: /login -> sign-in landing (mounted at the root router)
*/
