// Package router registers the HTTP routes.
package router

import (
	"midas_family_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router binds the handler aggregate to gin routes.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates a router over the given handlers.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes registers all route groups on the engine.
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	rt.RegisterFamilyRoutes(api)
}
