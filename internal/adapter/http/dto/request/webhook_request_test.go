package request

import (
	"encoding/json"
	"testing"
)

func TestWebhookRequestResolve(t *testing.T) {
	t.Run("top level preferred over nested payload", func(t *testing.T) {
		var r WebhookRequest
		body := `{"design_id":"top-design","project_id":"top-project","payload":{"design_id":"nested-design","project_id":"nested-project"}}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if got := r.ResolveDesignID(); got != "top-design" {
			t.Fatalf("expected top-design, got %q", got)
		}
		if got := r.ResolveProjectID(); got != "top-project" {
			t.Fatalf("expected top-project, got %q", got)
		}
	})

	t.Run("nested payload used when top level absent", func(t *testing.T) {
		var r WebhookRequest
		body := `{"payload":{"design_id":"nested-design","project_id":"nested-project"}}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if got := r.ResolveDesignID(); got != "nested-design" {
			t.Fatalf("expected nested-design, got %q", got)
		}
		if got := r.ResolveProjectID(); got != "nested-project" {
			t.Fatalf("expected nested-project, got %q", got)
		}
	})

	t.Run("blank top level falls through to nested", func(t *testing.T) {
		r := WebhookRequest{
			WebhookPayload: WebhookPayload{DesignID: "   "},
			Payload:        &WebhookPayload{DesignID: " nested-design "},
		}
		if got := r.ResolveDesignID(); got != "nested-design" {
			t.Fatalf("expected trimmed nested id, got %q", got)
		}
	})

	t.Run("nothing resolves to empty", func(t *testing.T) {
		var r WebhookRequest
		if r.ResolveDesignID() != "" || r.ResolveProjectID() != "" {
			t.Fatalf("expected empty identifiers")
		}
	})
}
