package request

import "strings"

// WebhookPayload carries the identifiers the sync needs from a milestone
// event.
type WebhookPayload struct {
	DesignID  string `json:"design_id"`
	ProjectID string `json:"project_id"`
	Milestone string `json:"milestone"`
}

// WebhookRequest is the milestone event delivered by Aurora. Depending on
// the webhook version the identifiers arrive at the top level or nested
// under "payload"; Resolve* prefers the top level.
type WebhookRequest struct {
	WebhookPayload
	Event   string          `json:"event"`
	Payload *WebhookPayload `json:"payload"`
}

func (r WebhookRequest) ResolveDesignID() string {
	if v := strings.TrimSpace(r.DesignID); v != "" {
		return v
	}
	if r.Payload != nil {
		return strings.TrimSpace(r.Payload.DesignID)
	}
	return ""
}

func (r WebhookRequest) ResolveProjectID() string {
	if v := strings.TrimSpace(r.ProjectID); v != "" {
		return v
	}
	if r.Payload != nil {
		return strings.TrimSpace(r.Payload.ProjectID)
	}
	return ""
}
