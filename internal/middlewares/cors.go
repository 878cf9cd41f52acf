package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows the given origins. A single "*" allows any origin without credentials.
func Cors(origins []string) func(http.Handler) http.Handler {
	allowCredentials := !(len(origins) == 1 && origins[0] == "*")

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	})
}
