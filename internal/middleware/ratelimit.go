package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type window struct {
	count int
	reset time.Time
}

// RateLimit caps requests per client IP inside a rolling window. It fronts the
// credential endpoints so password guessing burns out quickly; other routes
// stay unthrottled.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*window)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			now := time.Now()

			mu.Lock()
			win, ok := windows[ip]
			if !ok || now.After(win.reset) {
				win = &window{reset: now.Add(per)}
				windows[ip] = win
			}
			win.count++
			exceeded := win.count > limit
			mu.Unlock()

			if exceeded {
				denied(w, http.StatusTooManyRequests, "rate_limited", "too many attempts, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP trusts RemoteAddr, which the RealIP middleware has already rewritten
// from the forwarding headers by the time this runs.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
