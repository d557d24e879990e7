package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"stefan-booking/internal/metrics"
	"stefan-booking/internal/ratelimit"
	"stefan-booking/internal/transport"
)

const rateLimitMessage = "Zu viele Anfragen. Bitte warte einen Moment."

type RateLimiter struct {
	limit   int64
	window  time.Duration
	counter ratelimit.Counter
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewRateLimiter returns nil when limit is not positive; a nil limiter
// passes every request through.
func NewRateLimiter(counter ratelimit.Counter, limit int, window time.Duration, log *slog.Logger, m *metrics.Metrics) *RateLimiter {
	if limit <= 0 || counter == nil {
		return nil
	}
	return &RateLimiter{
		limit:   int64(limit),
		window:  window,
		counter: counter,
		log:     log,
		metrics: m,
	}
}

// clientIP reads RemoteAddr only; forwarded headers are honored upstream by
// RealIP when proxy headers are trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r) + ":" + r.URL.Path
		count, err := rl.counter.Hit(r.Context(), key, rl.window)
		if err != nil {
			// fail open
			rl.log.Warn("ratelimit: counter error",
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("error", err.Error()),
			)
			next.ServeHTTP(w, r)
			return
		}
		if count > rl.limit {
			if rl.metrics != nil {
				rl.metrics.BookingRejections.WithLabelValues(metrics.RejectRateLimited).Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			transport.WriteError(w, r, http.StatusTooManyRequests, rateLimitMessage, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
