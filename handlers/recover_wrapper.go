package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery
func RecoverWrapper(logger *slog.Logger, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logger.Error("panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"error", rec,
					"stack", string(stack),
				)
				writeJSON(w, http.StatusInternalServerError, ApiError{Error: "internal server error"})
			}
		}()

		handler(w, r)
	}
}
