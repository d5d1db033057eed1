package interfaces

import (
	"context"

	"helio_sync/internal/domain/entities"
)

// ICRMClient abstracts the Zoho CRM.
//
// The sync must be able to:
//   - locate the Install record matching the webhook's project id
//   - create one Design Snapshot record per processed event

type ICRMClient interface {
	FindInstallsByProjectID(ctx context.Context, projectID string) (int, []entities.Install, error)
	CreateSnapshot(ctx context.Context, snap entities.Snapshot) (int, string, error)
}
