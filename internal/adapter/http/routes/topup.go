package routes

import (
	"bakusam_topup/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMessages = "/messages"
	PathWebhook  = "/webhook"
	PathDrivers  = "/drivers"
)

func addTopupRoutes(rg *gin.RouterGroup, messageHandler *handlers.MessageHandler, webhookHandler *handlers.WebhookHandler, driverHandler *handlers.DriverHandler) {
	rg.POST(PathMessages, messageHandler.HandleMessage)

	webhook := rg.Group(PathWebhook)
	{
		webhook.POST("/midtrans", webhookHandler.HandleNotification)
		if handlers.IsWebhookTestEnabled() {
			webhook.POST("/test", webhookHandler.HandleTestNotification)
		}
	}

	drivers := rg.Group(PathDrivers)
	{
		drivers.GET("/:phone", driverHandler.GetDriver)
		drivers.GET("/:phone/transactions", driverHandler.ListTransactions)
	}
}
