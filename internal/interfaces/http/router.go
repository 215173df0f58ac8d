package http

import (
	"github.com/gin-gonic/gin"

	"presence/internal/interfaces/http/handlers"
	"presence/internal/interfaces/http/middleware"
	"presence/internal/interfaces/http/routes"
	"presence/internal/shared/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	engine              *gin.Engine
	registrationHandler *handlers.RegistrationHandler
	logger              logger.Interface
}

// NewRouter creates a new router with the given handlers.
func NewRouter(registrationHandler *handlers.RegistrationHandler, log logger.Interface) *Router {
	engine := gin.New()

	return &Router{
		engine:              engine,
		registrationHandler: registrationHandler,
		logger:              log,
	}
}

// SetupRoutes registers middleware and all application routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	routes.SetupRegistrationRoutes(r.engine, &routes.RegistrationRouteConfig{
		RegistrationHandler: r.registrationHandler,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
