package handlers

import (
	"log"
	"net/http"

	request "helio_sync/internal/adapter/http/dto/request"
	response "helio_sync/internal/adapter/http/dto/response"
	"helio_sync/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles inbound Aurora milestone events.

type WebhookHandler struct {
	usecase usecase.ISyncUseCase
}

func NewWebhookHandler(uc usecase.ISyncUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleMilestoneEvent processes one milestone delivery. It always
// acknowledges with 200 — failure detail goes to logs and the status body —
// so Aurora never re-delivers on our own processing failures.
func (h *WebhookHandler) HandleMilestoneEvent(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] undecodable payload err=%v", err)
		c.JSON(http.StatusOK, response.SyncResponse{Status: usecase.StatusIgnored})
		return
	}

	designID := payload.ResolveDesignID()
	projectID := payload.ResolveProjectID()
	log.Printf("[webhook][handler] milestone event received design_id=%s project_id=%s event=%s", designID, projectID, payload.Event)

	res := h.usecase.ProcessMilestoneEvent(c.Request.Context(), designID, projectID)
	log.Printf("[webhook][handler] milestone event done design_id=%s status=%s snapshot_id=%s", designID, res.Status, res.SnapshotID)

	c.JSON(http.StatusOK, response.FromSyncResult(res))
}
