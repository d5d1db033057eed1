package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"helio_sync/internal/domain/derive"
	"helio_sync/internal/domain/entities"
	"helio_sync/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDesignProviderNotConfigured = errors.New("design provider not configured")
	ErrCRMClientNotConfigured      = errors.New("crm client not configured")
)

// Event outcome statuses. Every failure path gets a distinct human-readable
// status; the webhook caller always receives these in a 200 body, never a
// 5xx, so Aurora does not endlessly retry delivery.
const (
	StatusProcessed       = "processed"
	StatusIgnored         = "ignored: missing design or project id"
	StatusAuroraPullError = "aurora pull error"
	StatusZohoLookupError = "zoho lookup error"
	StatusInstallNotFound = "install not found"
	StatusZohoWriteError  = "zoho write error"
	StatusInternalError   = "internal error"
)

// SyncResult is the terminal outcome of one webhook delivery.
type SyncResult struct {
	Status     string
	SnapshotID string
}

// ISyncUseCase encapsulates one unit of work per milestone delivery:
// fetch two Aurora documents, derive the snapshot fields, locate the CRM
// install, write one snapshot. No retries, no cross-event state.

type ISyncUseCase interface {
	ProcessMilestoneEvent(ctx context.Context, designID, projectID string) SyncResult
}

type SyncUseCase struct {
	provider interfaces.IDesignProvider
	crm      interfaces.ICRMClient
	eventLog interfaces.IEventLogRepository
	now      func() time.Time
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(provider interfaces.IDesignProvider, crm interfaces.ICRMClient, eventLog interfaces.IEventLogRepository) *SyncUseCase {
	return &SyncUseCase{provider: provider, crm: crm, eventLog: eventLog, now: time.Now}
}

func (u *SyncUseCase) ProcessMilestoneEvent(ctx context.Context, designID, projectID string) (result SyncResult) {
	designID = strings.TrimSpace(designID)
	projectID = strings.TrimSpace(projectID)
	log.Printf("[sync][usecase] process start design_id=%s project_id=%s", designID, projectID)

	defer func() {
		u.recordEvent(ctx, designID, projectID, result)
	}()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[sync][usecase] panic recovered design_id=%s project_id=%s panic=%v\n%s", designID, projectID, r, debug.Stack())
			result = SyncResult{Status: StatusInternalError}
		}
	}()

	if designID == "" || projectID == "" {
		log.Printf("[sync][usecase] missing identifiers; ignoring event design_id=%q project_id=%q", designID, projectID)
		return SyncResult{Status: StatusIgnored}
	}
	if u.provider == nil {
		log.Printf("[sync][usecase] %v design_id=%s", ErrDesignProviderNotConfigured, designID)
		return SyncResult{Status: StatusInternalError}
	}
	if u.crm == nil {
		log.Printf("[sync][usecase] %v design_id=%s", ErrCRMClientNotConfigured, designID)
		return SyncResult{Status: StatusInternalError}
	}

	status, rawDesign, err := u.provider.FetchDesignSummary(ctx, designID)
	if err != nil || status != http.StatusOK {
		log.Printf("[sync][usecase] design fetch failed design_id=%s status=%d err=%v", designID, status, err)
		return SyncResult{Status: StatusAuroraPullError}
	}
	status, rawPricing, err := u.provider.FetchPricing(ctx, designID)
	if err != nil || status != http.StatusOK {
		log.Printf("[sync][usecase] pricing fetch failed design_id=%s status=%d err=%v", designID, status, err)
		return SyncResult{Status: StatusAuroraPullError}
	}

	design, canonDesign := decodeDesign(rawDesign)
	pricing, canonPricing := decodePricing(rawPricing)
	log.Printf("[sync][usecase] documents loaded design_id=%s milestone=%s pricing_method=%s", designID, design.Milestone.Milestone, pricing.PricingMethod)

	status, installs, err := u.crm.FindInstallsByProjectID(ctx, projectID)
	if err != nil {
		log.Printf("[sync][usecase] install lookup failed project_id=%s err=%v", projectID, err)
		return SyncResult{Status: StatusZohoLookupError}
	}
	// Zoho answers an empty search with 204.
	if status == http.StatusNoContent || (status == http.StatusOK && len(installs) == 0) {
		log.Printf("[sync][usecase] no install matched project_id=%s", projectID)
		return SyncResult{Status: StatusInstallNotFound}
	}
	if status != http.StatusOK {
		log.Printf("[sync][usecase] install lookup failed project_id=%s status=%d", projectID, status)
		return SyncResult{Status: StatusZohoLookupError}
	}

	install := installs[0]
	dealID := ""
	if install.Opportunity != nil {
		dealID = install.Opportunity.ID
	}
	log.Printf("[sync][usecase] install matched project_id=%s install_id=%s deal_id=%s redline=%.4f", projectID, install.ID, dealID, install.SalesOrgRedlinePPW.Float())

	snap := derive.BuildSnapshot(derive.SnapshotInput{
		Design:             design,
		Pricing:            pricing,
		RawDesign:          canonDesign,
		RawPricing:         canonPricing,
		InstallID:          install.ID,
		DealID:             dealID,
		ProjectID:          projectID,
		DesignID:           designID,
		SalesOrgRedlinePPW: install.SalesOrgRedlinePPW.Float(),
		Now:                u.now(),
	})

	status, createdID, err := u.crm.CreateSnapshot(ctx, snap)
	if err != nil || !isWriteAccepted(status) {
		log.Printf("[sync][usecase] snapshot create failed design_id=%s status=%d err=%v", designID, status, err)
		return SyncResult{Status: StatusZohoWriteError}
	}

	log.Printf("[sync][usecase] process success design_id=%s project_id=%s snapshot_id=%s size_watts=%d", designID, projectID, createdID, snap.SystemSizeWatts)
	return SyncResult{Status: StatusProcessed, SnapshotID: createdID}
}

func isWriteAccepted(status int) bool {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return true
	}
	return false
}

// decodeDesign normalizes the wrapped/unwrapped envelope and decodes the
// canonical document. Decode failures are logged and tolerated; derivation
// runs on whatever decoded, defaulting the rest.
func decodeDesign(raw json.RawMessage) (entities.DesignDocument, json.RawMessage) {
	canon := entities.Unwrap(raw, "design")
	var doc entities.DesignDocument
	if err := json.Unmarshal(canon, &doc); err != nil {
		log.Printf("[sync][usecase] design decode incomplete err=%v", err)
	}
	return doc, canon
}

func decodePricing(raw json.RawMessage) (entities.PricingDocument, json.RawMessage) {
	canon := entities.Unwrap(raw, "pricing")
	var doc entities.PricingDocument
	if err := json.Unmarshal(canon, &doc); err != nil {
		log.Printf("[sync][usecase] pricing decode incomplete err=%v", err)
	}
	return doc, canon
}

func (u *SyncUseCase) recordEvent(ctx context.Context, designID, projectID string, result SyncResult) {
	if u.eventLog == nil {
		return
	}
	ev := entities.SyncEvent{
		ID:         uuid.NewString(),
		DesignID:   designID,
		ProjectID:  projectID,
		Status:     result.Status,
		SnapshotID: result.SnapshotID,
		ReceivedAt: u.now().UTC(),
	}
	if err := u.eventLog.Record(ctx, ev); err != nil {
		log.Printf("[sync][usecase] event log write failed design_id=%s err=%v", designID, err)
	}
}
