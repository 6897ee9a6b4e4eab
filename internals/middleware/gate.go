package middle

import (
	"net/http"
	"net/url"
	"tripdash/internals/gate"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type GateMiddleware struct {
	table         *gate.Table
	callbackParam string
	logger        *zerolog.Logger
}

// NewGateMiddleware wraps table for HTTP. When callbackParam is non-empty,
// login redirects carry the originally requested URI under that name.
func NewGateMiddleware(table *gate.Table, callbackParam string, logger *zerolog.Logger) *GateMiddleware {
	return &GateMiddleware{
		table:         table,
		callbackParam: callbackParam,
		logger:        logger,
	}
}

func (g *GateMiddleware) Handle(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if !g.table.Covers(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		claims, _ := ClaimsFromContext(r.Context())
		decision := g.table.Evaluate(r.URL.Path, claims)
		if decision.Outcome == gate.Allow {
			next.ServeHTTP(w, r)
			return
		}

		location := decision.Location
		if decision.Outcome == gate.RedirectLogin && g.callbackParam != "" {
			location = withQueryParam(location, g.callbackParam, r.URL.RequestURI())
		}

		g.logger.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Str("outcome", decision.Outcome.String()).
			Str("reason", string(decision.Reason)).
			Str("location", location).
			Msg("gate redirect")

		http.Redirect(w, r, location, http.StatusTemporaryRedirect)
	}

	return http.HandlerFunc(fn)
}

func withQueryParam(location, key, value string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
