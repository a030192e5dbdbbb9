package middleware

import (
	"net/http"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
)

// Locale stores the Accept-Language match on the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := i18n.ResolveTag(r)
		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(i18n.WithTag(r.Context(), tag)))
	})
}
