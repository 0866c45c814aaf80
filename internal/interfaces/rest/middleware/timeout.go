package middleware

import (
	"net/http"
	"time"
)

// Timeout bounds handler execution. http.TimeoutHandler also places the
// deadline on the request context, so storage calls still in flight are
// cancelled when the 503 is written.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body := `{"success":false,"error":{"code":"TIMEOUT","message":"request timed out"}}`
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, body)
	}
}
