package routes

import (
	"log"
	"strconv"

	"helio_sync/internal/adapter/http/handlers"
	repository2 "helio_sync/internal/adapter/persistence/repository"
	"helio_sync/internal/config"
	"helio_sync/internal/infrastructure/aurora"
	"helio_sync/internal/infrastructure/database"
	"helio_sync/internal/infrastructure/zoho"
	"helio_sync/internal/usecase"
	"helio_sync/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()
	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	var provider interfaces.IDesignProvider
	auroraClient, err := aurora.NewClient(cfg.Aurora)
	if err != nil {
		log.Printf("Aurora client not configured: %v", err)
	} else {
		provider = auroraClient
	}

	var crm interfaces.ICRMClient
	zohoClient, err := zoho.NewClient(cfg.Zoho)
	if err != nil {
		log.Printf("Zoho client not configured: %v", err)
	} else {
		crm = zohoClient
	}

	var eventLog interfaces.IEventLogRepository
	if cfg.EventLog.Table != "" {
		ddb := database.ConnectDynamoDB(cfg.EventLog)
		eventLog = repository2.NewSyncEventDynamoRepository(ddb, cfg.EventLog.Table)
	}

	syncUseCase := usecase.NewSyncUseCase(provider, crm, eventLog)
	webhookHandler := handlers.NewWebhookHandler(syncUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSyncRoutes(v1, webhookHandler, cfg.Server.WebhookSecret)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
