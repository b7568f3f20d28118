package routes

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "usersapi/docs"
	"usersapi/handlers"
)

// CORS middleware
func withCORS(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Location, X-Request-ID")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetupRoutes builds the full handler tree: request id + access log, CORS,
// then the users API, health check and Swagger UI.
func SetupRoutes(
	logger *slog.Logger,
	allowedOrigin string,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return handlers.RecoverWrapper(logger, h)
	}

	// User routes
	mux.HandleFunc("POST /users", wrap(userHandler.Create))
	mux.HandleFunc("GET /users", wrap(userHandler.ListAll))
	mux.HandleFunc("GET /users/{id}", wrap(userHandler.ListById))
	mux.HandleFunc("PUT /users/{id}", wrap(userHandler.Update))
	mux.HandleFunc("PATCH /users/{id}", wrap(userHandler.PartialUpdate))
	mux.HandleFunc("DELETE /users/{id}", wrap(userHandler.Delete))

	mux.HandleFunc("GET /health", wrap(healthHandler.Health))

	// API documentation
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return handlers.RequestLogger(logger, withCORS(allowedOrigin, mux))
}
