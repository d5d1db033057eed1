package interfaces

import (
	"context"
	"encoding/json"
)

// IDesignProvider abstracts the Aurora design platform.
//
// Both fetches return the HTTP status alongside the raw body; the sync
// treats any non-200 as a hard failure for the event and never retries.
// Bodies stay raw so envelope normalization happens exactly once upstream.
type IDesignProvider interface {
	FetchDesignSummary(ctx context.Context, designID string) (int, json.RawMessage, error)
	FetchPricing(ctx context.Context, designID string) (int, json.RawMessage, error)
}
