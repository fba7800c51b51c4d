package router

import (
	"listora/controllers"
	"listora/logger"
	"listora/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares. Per-route Logger keeps
// request logging off the SSE stream, which would otherwise log once
// per connection lifetime.
func Initialize(r *gin.Engine, log *logger.Logger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	api := r.Group("/api")

	// Asset partitions
	api.GET("/assets/:category", Logger(log), controllers.GetAssets)
	api.GET("/assets/:category/:id", Logger(log), controllers.GetAssetByID)
	api.POST("/assets/:category", Logger(log), controllers.CreateAsset)
	api.POST("/assets/:category/upload", Logger(log), controllers.UploadAsset)
	api.PUT("/assets/:category/:id", Logger(log), controllers.UpdateAsset)
	api.DELETE("/assets/:category/:id", Logger(log), controllers.DeleteAsset)
	api.POST("/assets/:category/:id/pin", Logger(log), controllers.TogglePin)
	api.POST("/assets/:category/:id/hide", Logger(log), controllers.ToggleHide)

	// Derived counts
	api.GET("/counts", Logger(log), controllers.GetCounts)

	// Active chat-session lists
	api.GET("/chats/:category", Logger(log), controllers.GetChatSessions)
	api.PUT("/chats/:category", Logger(log), controllers.PutChatSessions)

	// Settings blobs
	api.GET("/settings/:section", Logger(log), controllers.GetSettings)
	api.PUT("/settings/:section", Logger(log), controllers.PutSettings)

	// Change stream for mounted observers
	api.GET("/events", controllers.StreamEvents)

	log.Info("routes initialized")
}
