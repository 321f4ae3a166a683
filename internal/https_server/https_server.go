// Package https_server assembles the gin engine: middleware, CORS and
// route registration.
package https_server

import (
	"midas_family_server/internal/config"
	"midas_family_server/internal/handler"
	"midas_family_server/internal/infrastructure/logger"
	"midas_family_server/internal/infrastructure/middleware"
	"midas_family_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init builds the engine with zap logging, panic recovery, CORS and the
// business routes.
func Init(handlers *handler.Handlers) *gin.Engine {
	conf := config.GetConfig()

	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	if conf.MainConfig.TlsRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
