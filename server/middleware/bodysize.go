package middleware

import (
	"net/http"
)

// BodySizeLimit caps the request body at maxBytes. Reads past the cap fail
// with *http.MaxBytesError, which handlers report as 413.
func BodySizeLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
