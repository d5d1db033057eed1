package response

import "helio_sync/internal/usecase"

// SyncResponse is the acknowledgment body for webhook deliveries. Always
// returned with HTTP 200; the status string carries the outcome.
type SyncResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}

func FromSyncResult(r usecase.SyncResult) SyncResponse {
	return SyncResponse{
		Status:     r.Status,
		SnapshotID: r.SnapshotID,
	}
}
