package middleware

import (
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/repticare/storefront/internal/auth"
)

// GuardPaths is the fixed classification table the guard evaluates, first
// match wins: assets, then open, then guest-only, then protected (the rest).
type GuardPaths struct {
	Open      []string
	GuestOnly []string

	AssetPrefixes   []string
	AssetExtensions []string

	LoginPath string
	HomePath  string
}

// DefaultGuardPaths is the storefront's route table.
func DefaultGuardPaths() GuardPaths {
	return GuardPaths{
		Open: []string{
			"/",
			"/produtos",
			"/veterinarios",
			"/locais-de-saude",
			"/artigos",
			"/sobre",
			"/carrinho",
			"/logout",
			"/health",
		},
		GuestOnly: []string{
			"/login",
			"/cadastro",
		},
		AssetPrefixes:   []string{"/assets/", "/static/"},
		AssetExtensions: []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico"},
		LoginPath:       "/login",
		HomePath:        "/home",
	}
}

// RouteGuard classifies every request before any handler runs. Open paths and
// assets always pass. Guest-only paths bounce authenticated users to the home
// path. Everything else requires a structurally valid, unexpired token cookie;
// otherwise the request is redirected to login with the original target in a
// next parameter. The check is purely structural (see auth.Inspect) and fails
// closed.
func RouteGuard(paths GuardPaths) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path

			if isAsset(paths, p) || matchesAny(paths.Open, p) {
				next.ServeHTTP(w, r)
				return
			}

			if matchesAny(paths.GuestOnly, p) {
				if tokenValid(r) {
					http.Redirect(w, r, paths.HomePath, http.StatusTemporaryRedirect)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !tokenValid(r) {
				target := paths.LoginPath + "?next=" + url.QueryEscape(requestTarget(r))
				http.Redirect(w, r, target, http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenValid(r *http.Request) bool {
	c, err := r.Cookie(auth.CookieName)
	if err != nil {
		return false
	}
	return auth.Inspect(c.Value, time.Now()) == nil
}

// matchesAny reports an exact match or a segment-prefix match ("/produtos"
// also covers "/produtos/42"). The root path only matches exactly.
func matchesAny(set []string, p string) bool {
	for _, s := range set {
		if p == s {
			return true
		}
		if s != "/" && strings.HasPrefix(p, s+"/") {
			return true
		}
	}
	return false
}

func isAsset(paths GuardPaths, p string) bool {
	if p == "/favicon.ico" {
		return true
	}
	for _, prefix := range paths.AssetPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	ext := strings.ToLower(path.Ext(p))
	for _, e := range paths.AssetExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// requestTarget is the original path plus query, preserved for post-login
// return.
func requestTarget(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + r.URL.RawQuery
}
