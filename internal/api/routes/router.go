package routes

import (
	"encoding/json"
	"net/http"

	"github.com/discoverguadeloupe/backend/internal/api/handlers"
	"github.com/discoverguadeloupe/backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	siteHandler *handlers.SiteHandler

	allowedOrigins []string
}

// NewRouter creates a new router
func NewRouter(siteHandler *handlers.SiteHandler, allowedOrigins []string) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		siteHandler:    siteHandler,
		allowedOrigins: allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Site endpoints
	r.mux.HandleFunc("GET /sites", r.siteHandler.ListSites)
	r.mux.HandleFunc("GET /sites/{id}", r.siteHandler.GetSite)
	r.mux.HandleFunc("POST /sites", r.siteHandler.CreateSite)
	r.mux.HandleFunc("PUT /sites/{id}", r.siteHandler.UpdateSite)
	r.mux.HandleFunc("PATCH /sites/{id}", r.siteHandler.UpdateSite)
	r.mux.HandleFunc("DELETE /sites/{id}", r.siteHandler.DeleteSite)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so every response carries the headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
