package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"stefan-booking/internal/transport"
)

// Recover turns a panic into the generic 500 body instead of a dropped
// connection.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
