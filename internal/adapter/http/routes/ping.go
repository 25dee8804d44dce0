package routes

import (
	"net/http"
	"time"

	"bakusam_topup/internal/adapter/persistence/memory"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

func addPingRoutes(rg *gin.RouterGroup, orderStore *memory.PendingOrderStore) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	rg.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "active",
			"pending_orders": orderStore.Count(),
			"uptime":         time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
