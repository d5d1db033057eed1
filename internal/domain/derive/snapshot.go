package derive

import (
	"encoding/json"
	"fmt"
	"time"

	"helio_sync/internal/domain/entities"
)

const (
	auroraProjectLinkTemplate = "https://v2.aurorasolar.com/projects/%s/overview"
	auroraDesignLinkTemplate  = "https://v2.aurorasolar.com/projects/%s/designs/%s/pricing"

	snapshotTitleTimeLayout = "2006-01-02 15:04:05"

	// ProcessingStatusProcessed is the fixed status literal for the
	// event-driven path.
	ProcessingStatusProcessed = "Processed"
)

// SnapshotInput carries everything the assembler needs: the two normalized
// provider documents, their canonical raw payloads for audit embedding, CRM
// linkage ids, the install's redline, and the processing clock (injectable
// for tests; zero means time.Now).
type SnapshotInput struct {
	Design     entities.DesignDocument
	Pricing    entities.PricingDocument
	RawDesign  json.RawMessage
	RawPricing json.RawMessage

	InstallID string
	DealID    string
	ProjectID string
	DesignID  string

	SalesOrgRedlinePPW float64
	Now                time.Time
}

// BuildSnapshot composes the outputs of the size resolver, breakdown
// aggregator, commission classifier and equipment extractor into the flat
// snapshot record. Pure: same input plus same clock yields the same record.
func BuildSnapshot(in SnapshotInput) entities.Snapshot {
	size := SystemSizeWatts(in.Pricing)
	totals := AggregateBreakdown(in.Pricing, size)
	adderDetails, discountDetails := BreakdownDetails(in.Pricing)
	adderNames, discountNames := AdderNameLists(in.Pricing.Adders)
	commission := ClassifyCommissionAdders(in.Pricing.Adders, in.SalesOrgRedlinePPW)
	equipment := ExtractEquipment(in.Pricing.PricingByComponent)

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(time.Local).Truncate(time.Second)

	snap := entities.Snapshot{
		Name: fmt.Sprintf("%s | %s | %s | %s",
			firstN(in.ProjectID, 8),
			firstN(in.DesignID, 8),
			in.Design.Milestone.Milestone,
			now.Format(snapshotTitleTimeLayout),
		),
		ProjectID: in.ProjectID,
		DesignID:  in.DesignID,

		DesignName:      in.Design.Name,
		DesignCreatedAt: NormalizeTimestamp(in.Design.CreatedAt),
		Milestone:       in.Design.Milestone.Milestone,
		MilestoneID:     in.Design.Milestone.ID,
		MilestoneNotes:  in.Design.Milestone.Notes,
		MilestoneTime:   NormalizeTimestamp(in.Design.Milestone.RecordedAt),

		PricingMethod:     in.Pricing.PricingMethod,
		SystemSizeWatts:   size,
		PricePerWatt:      in.Pricing.PricePerWatt.Float(),
		GrossPricePerWatt: totals.GrossPricePerWatt,

		BasePrice:        totals.BasePrice,
		TotalAdders:      totals.TotalAdders,
		TotalDiscounts:   totals.TotalDiscounts,
		FinalSystemPrice: totals.FinalSystemPrice,

		SolarIncentivesTotal:         totals.SolarIncentivesTotal,
		StorageIncentivesTotal:       totals.StorageIncentivesTotal,
		IncentivesTotal:              totals.IncentivesTotal,
		SolarPriceBeforeIncentives:   totals.SolarPriceBeforeIncentives,
		StoragePriceBeforeIncentives: totals.StoragePriceBeforeIncentives,
		TotalPriceBeforeIncentives:   totals.TotalPriceBeforeIncentives,

		AdderDetails:     adderDetails,
		DiscountDetails:  discountDetails,
		AdderNameList:    adderNames,
		DiscountNameList: discountNames,

		ConsultantCompPPW:    commission.ConsultantCompPPW,
		HelioLeadFeePPW:      commission.HelioLeadFeePPW,
		ReferralPayout:       commission.ReferralPayout,
		ESUplineDiscountPPW:  commission.ESUplineDiscountPPW,
		EVPUplineDiscountPPW: commission.EVPUplineDiscountPPW,
		SalesOrgRedlinePPW:   in.SalesOrgRedlinePPW,
		RedlineAtSale:        commission.RedlineAtSale,

		ModuleModel:      equipment.ModuleModel,
		ModuleCount:      equipment.ModuleCount,
		InverterModel:    equipment.InverterModel,
		InverterCount:    equipment.InverterCount,
		OptimizerCount:   equipment.OptimizerCount,
		BatteryModel:     equipment.BatteryModel,
		BatteryCount:     equipment.BatteryCount,
		BatteryBasePrice: equipment.BatteryBasePrice,

		AuroraProjectLink: fmt.Sprintf(auroraProjectLinkTemplate, in.ProjectID),
		AuroraDesignLink:  fmt.Sprintf(auroraDesignLinkTemplate, in.ProjectID, in.DesignID),

		RawDesignPayload:  string(in.RawDesign),
		RawPricingPayload: string(in.RawPricing),
		ProcessingStatus:  ProcessingStatusProcessed,
	}

	if in.InstallID != "" {
		snap.Install = &entities.Lookup{ID: in.InstallID}
	}
	if in.DealID != "" {
		snap.Opportunity = &entities.Lookup{ID: in.DealID}
	}
	return snap
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
