package routes

import (
	"log"

	"helio_sync/internal/adapter/http/handlers"
	"helio_sync/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
)

func addSyncRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, webhookSecret string) {
	if webhookSecret == "" {
		log.Printf("[webhook][routes] no WEBHOOK_SECRET configured; accepting unauthenticated deliveries")
	}

	hooks := rg.Group(PathWebhooks, middleware.RequireWebhookSecret(webhookSecret))
	{
		hooks.POST("/aurora/milestone", webhookHandler.HandleMilestoneEvent)
	}
}
