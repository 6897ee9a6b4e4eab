// Package gate decides whether a dashboard request may proceed, based only on
// the request path and the session claims already attached by the
// authentication layer. It performs no I/O and holds no mutable state, so one
// Table serves every request concurrently.
package gate

import (
	"fmt"
	"path"
	"strings"
	"tripdash/internals/security"
)

type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectFallback
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectFallback:
		return "redirect_fallback"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonUnauthorized    Reason = "unauthorized"
)

// Decision is the single result of evaluating one request.
// Location is empty for Allow.
type Decision struct {
	Outcome  Outcome
	Location string
	Reason   Reason
}

type Config struct {
	Matcher       []string
	AdminPrefixes []string
	UserPrefixes  []string
	LoginPath     string
	FallbackPath  string
}

// Table is the path classification table. Build it with NewTable; it is never
// modified afterwards.
type Table struct {
	matcher      []string
	adminOnly    []string
	userOnly     []string
	loginPath    string
	fallbackPath string
}

func NewTable(cfg Config) (*Table, error) {
	if len(cfg.Matcher) == 0 {
		return nil, fmt.Errorf("gate: matcher must contain at least one prefix")
	}
	if err := checkAbsolute("login path", cfg.LoginPath); err != nil {
		return nil, err
	}
	if err := checkAbsolute("fallback path", cfg.FallbackPath); err != nil {
		return nil, err
	}

	matcher, err := normalizeAll("matcher", cfg.Matcher)
	if err != nil {
		return nil, err
	}
	admin, err := normalizeAll("admin prefix", cfg.AdminPrefixes)
	if err != nil {
		return nil, err
	}
	user, err := normalizeAll("user prefix", cfg.UserPrefixes)
	if err != nil {
		return nil, err
	}

	// Admin and user tiers must be disjoint: an overlapping path would be
	// unreachable for every role.
	for _, a := range admin {
		for _, u := range user {
			if strings.HasPrefix(a, u) || strings.HasPrefix(u, a) {
				return nil, fmt.Errorf("gate: admin prefix %q overlaps user prefix %q", a, u)
			}
		}
	}

	// Redirect targets must not themselves redirect.
	if matchAny(matcher, cleanPath(cfg.LoginPath)) {
		return nil, fmt.Errorf("gate: login path %q is covered by the matcher", cfg.LoginPath)
	}
	fallback := cleanPath(cfg.FallbackPath)
	if matchTier(admin, fallback) || matchTier(user, fallback) {
		return nil, fmt.Errorf("gate: fallback path %q is role restricted", cfg.FallbackPath)
	}

	return &Table{
		matcher:      matcher,
		adminOnly:    admin,
		userOnly:     user,
		loginPath:    cfg.LoginPath,
		fallbackPath: cfg.FallbackPath,
	}, nil
}

func (t *Table) LoginPath() string    { return t.loginPath }
func (t *Table) FallbackPath() string { return t.fallbackPath }

// Covers reports whether the gate inspects p at all.
func (t *Table) Covers(p string) bool {
	return matchAny(t.matcher, cleanPath(p))
}

// Evaluate classifies p and returns the decision for claims. A nil claims
// value means no usable session token was presented.
func (t *Table) Evaluate(p string, claims *security.SessionClaims) Decision {
	p = cleanPath(p)

	if !matchAny(t.matcher, p) {
		return Decision{Outcome: Allow}
	}

	if claims == nil || !claims.Role.Valid() {
		return Decision{Outcome: RedirectLogin, Location: t.loginPath, Reason: ReasonUnauthenticated}
	}

	if matchTier(t.adminOnly, p) && claims.Role != security.RoleAdmin {
		return t.fallback()
	}
	if matchTier(t.userOnly, p) && claims.Role != security.RoleUser {
		return t.fallback()
	}

	return Decision{Outcome: Allow}
}

// Allowed is Evaluate reduced to a boolean for callers that only need to
// know whether a role can reach a path, such as menu builders.
func (t *Table) Allowed(p string, role security.Role) bool {
	return t.Evaluate(p, &security.SessionClaims{Role: role}).Outcome == Allow
}

func (t *Table) fallback() Decision {
	return Decision{Outcome: RedirectFallback, Location: t.fallbackPath, Reason: ReasonUnauthorized}
}

func checkAbsolute(what, p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("gate: %s %q must be an absolute path", what, p)
	}
	return nil
}

func normalizeAll(what string, prefixes []string) ([]string, error) {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if err := checkAbsolute(what, p); err != nil {
			return nil, err
		}
		out = append(out, cleanPath(p))
	}
	return out, nil
}

// cleanPath resolves dot segments and drops a trailing slash so that
// "/dashboard/users/" and "/dashboard/x/../users" classify like
// "/dashboard/users".
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// matchTier is a plain string prefix match: "/dashboard/users" also
// restricts "/dashboard/users-export" and "/dashboard/usersettings".
func matchTier(prefixes []string, p string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func matchAny(prefixes []string, p string) bool {
	for _, prefix := range prefixes {
		if hasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// hasPrefix matches whole path segments only, so the matcher "/dashboard"
// covers "/dashboard/trips" but not "/dashboards".
func hasPrefix(p, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}
