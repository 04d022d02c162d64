package middleware

import (
	"net/http"
	"strings"

	"github.com/vaultpass/passgen/internal/locale"
)

// skipLocalePrefixes are served without a locale segment.
var skipLocalePrefixes = []string{"/api", "/health", "/favicon.ico", "/placeholder", "/static"}

// LocaleRedirect sends requests whose path has no supported locale segment
// to the same path under the locale negotiated from Accept-Language, e.g.
// /about becomes /de/about.
func LocaleRedirect(next http.Handler) http.Handler {
	return LocaleRedirectWithDefault(locale.Default)(next)
}

// LocaleRedirectWithDefault is LocaleRedirect with fallback used when the
// Accept-Language header names no supported locale.
func LocaleRedirectWithDefault(fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return localeRedirect(next, fallback)
	}
}

func localeRedirect(next http.Handler, fallback string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if skipLocale(path) {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := locale.FromPath(path); ok {
			next.ServeHTTP(w, r)
			return
		}

		target := "/" + locale.NegotiateOr(r.Header.Get("Accept-Language"), fallback)
		if path != "/" {
			target += path
		}
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		w.Header().Add("Vary", "Accept-Language")
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

func skipLocale(path string) bool {
	for _, prefix := range skipLocalePrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
