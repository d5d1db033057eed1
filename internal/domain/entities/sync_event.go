package entities

import "time"

// SyncEvent is one audit row per processed webhook delivery. Operational
// telemetry only; the CRM snapshot remains the system of record.
type SyncEvent struct {
	ID         string    `json:"id"`
	DesignID   string    `json:"design_id"`
	ProjectID  string    `json:"project_id"`
	Status     string    `json:"status"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}
