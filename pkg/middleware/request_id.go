package middleware

import (
	"net/http"

	"travel-booking/pkg/utils"

	"github.com/google/uuid"
)

// RequestID ensures every request has an ID for tracing and logs.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", rid)
			ctx := utils.SetRequestIDContext(r.Context(), rid)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
