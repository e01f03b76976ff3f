package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets the dashboard front end call the API from another origin.
// Only real preflights (Origin + Access-Control-Request-Method) are answered
// here; any other OPTIONS request reaches the router.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
