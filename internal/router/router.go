package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"assistant-relay/internal/handlers"
	"assistant-relay/internal/middleware"
)

func New(
	assistantHandler *handlers.AssistantHandler,
	spaHandler *handlers.SPAHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/assistant", assistantHandler.Ask)
	})

	// ──── Frontend bundle with SPA fallback ────
	r.Get("/*", spaHandler.ServeHTTP)
	r.Head("/*", spaHandler.ServeHTTP)

	return r
}
