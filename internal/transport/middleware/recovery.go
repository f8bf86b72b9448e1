package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
)

const internalErrorBody = `{"error":"internal server error","code":"internal_error"}`

// Recovery turns a handler panic into a logged 500 with the API's JSON error
// body. If the handler had already started its response only the log line is
// written. http.ErrAbortHandler is re-raised so net/http can abort the response.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", sw.wroteHeader),
				)
				if sw.wroteHeader {
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(internalErrorBody)) //nolint:errcheck
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
