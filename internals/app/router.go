package app

import (
	"net/http"
	middle "tripdash/internals/middleware"
	"tripdash/internals/modules/auth"
	"tripdash/internals/modules/dashboard"
	"tripdash/internals/modules/event"
	"tripdash/internals/modules/proxy"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(c *Container) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middle.Logger(c.Logger))
	r.Use(middleware.Timeout(c.requestTimeout))

	// claims first, then the gate; the gate itself skips paths outside its matcher
	r.Use(c.authMW.Handle)
	r.Use(c.gateMW.Handle)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get(c.table.LoginPath(), c.authHandler.LoginPage)
	r.Mount("/dashboard", dashboard.Routes(c.dashboardHandler))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", auth.Routes(c.authHandler))
		proxy.Register(api, c.forwarder)
		event.Register(api, c.eventHandler)
	})

	return r
}
