package interfaces

import (
	"context"

	"helio_sync/internal/domain/entities"
)

// IEventLogRepository abstracts the optional DynamoDB audit log. Writes are
// best-effort; a failed write never fails the event.

type IEventLogRepository interface {
	Record(ctx context.Context, ev entities.SyncEvent) error
}
