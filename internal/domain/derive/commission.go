package derive

import (
	"strings"

	"helio_sync/internal/domain/entities"
)

// Commission adder labels are an exact vocabulary agreed with sales ops.
// Matching is case-sensitive after whitespace trim; a provider-side rename
// silently zeroes the matching field. That is the long-standing contract,
// not a bug to fix here.
const (
	adderConsultantComp    = "A - Consultant Comp"
	adderHelioProvidedLead = "A - Helio Provided Lead"
	adderReferralPayout    = "A - Referral Payout"
	adderESUplineDiscount  = "A - COMP: ES Upline Discount"
	adderEVPUplineDiscount = "A - COMP: EVP Upline Discount"
)

// CommissionFields are the redline-relevant per-watt values isolated from
// the flat adders list. At most one line is expected per label; duplicates
// overwrite, last one wins.
type CommissionFields struct {
	ConsultantCompPPW    float64
	HelioLeadFeePPW      float64
	ReferralPayout       float64
	ESUplineDiscountPPW  float64
	EVPUplineDiscountPPW float64
	RedlineAtSale        float64
}

// ClassifyCommissionAdders scans the flat adders list against the
// commission vocabulary. salesOrgRedlinePPW comes from the matched CRM
// install record (0 when absent).
func ClassifyCommissionAdders(adders []entities.AdderLine, salesOrgRedlinePPW float64) CommissionFields {
	var c CommissionFields
	for _, line := range adders {
		v := line.AdderValue.Float()
		switch strings.TrimSpace(line.AdderName) {
		case adderConsultantComp:
			c.ConsultantCompPPW = v
		case adderHelioProvidedLead:
			c.HelioLeadFeePPW = v
		case adderReferralPayout:
			c.ReferralPayout = v
		case adderESUplineDiscount:
			c.ESUplineDiscountPPW = v
		case adderEVPUplineDiscount:
			c.EVPUplineDiscountPPW = v
		}
	}
	c.RedlineAtSale = salesOrgRedlinePPW + c.ESUplineDiscountPPW + c.EVPUplineDiscountPPW
	return c
}
