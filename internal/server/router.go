package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the HTTP surface: the chat endpoint under /api and the
// liveness probe at /health.
func NewRouter(chat *ChatHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	chat.Register(api)

	router.GET("/health", health)

	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
