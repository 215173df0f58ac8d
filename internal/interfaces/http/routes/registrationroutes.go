package routes

import (
	"github.com/gin-gonic/gin"

	"presence/internal/interfaces/http/handlers"
)

// RegistrationRouteConfig holds dependencies for registration routes.
type RegistrationRouteConfig struct {
	RegistrationHandler *handlers.RegistrationHandler
}

// SetupRegistrationRoutes configures the registration routes.
func SetupRegistrationRoutes(engine *gin.Engine, cfg *RegistrationRouteConfig) {
	engine.GET("/", cfg.RegistrationHandler.Root)
	engine.POST("/info_input", cfg.RegistrationHandler.SubmitInfo)
	engine.GET("/info_output/:eid", cfg.RegistrationHandler.GetInfo)
}
