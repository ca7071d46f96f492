package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	"github.com/domiapi/nanobanana-http/internal/logger"
	"github.com/domiapi/nanobanana-http/internal/server/handler"
)

func Start(host, port, apiKey string) {
	router := InitRouter(apiKey)
	if err := router.Run(host + ":" + port); err != nil {
		panic(err)
	}
}

// APIKeyMiddleware rejects requests whose API-KEY header does not match.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestKey := c.GetHeader("API-KEY")
		if requestKey != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid API key",
			})
			return
		}
		c.Next()
	}
}

// InitRouter wires the tool endpoints. An empty apiKey leaves them open.
func InitRouter(apiKey string) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger.Zap(), true))
	router.Use(ginzap.Ginzap(logger.Zap(), time.RFC3339Nano, true))
	router.Use(cors.Default())
	pprof.Register(router)

	apiGroup := router.Group("")
	if apiKey != "" {
		apiGroup.Use(APIKeyMiddleware(apiKey))
	}
	apiGroup.POST("/tools/text-to-image", handler.TextToImage)
	apiGroup.POST("/tools/image-edit", handler.ImageEdit)
	apiGroup.GET("/tools/sizes", handler.SupportedSizes)
	apiGroup.POST("/tools/validate-token", handler.ValidateToken)

	apiGroup.POST("/prompts/generation", handler.GenerationPrompt)
	apiGroup.POST("/prompts/editing", handler.EditingPrompt)
	return router
}
