package derive

import (
	"encoding/json"
	"strings"

	"helio_sync/internal/domain/entities"
)

// BreakdownTotals are the aggregate dollar figures folded out of the solar
// and storage price breakdowns. Every field defaults to 0; missing or
// malformed lines never abort the fold.
type BreakdownTotals struct {
	BasePrice        float64
	TotalAdders      float64
	TotalDiscounts   float64
	FinalSystemPrice float64

	SolarIncentivesTotal         float64
	StorageIncentivesTotal       float64
	IncentivesTotal              float64
	SolarPriceBeforeIncentives   float64
	StoragePriceBeforeIncentives float64
	TotalPriceBeforeIncentives   float64

	GrossPricePerWatt float64
}

// AggregateBreakdown walks system_price_breakdown once classifying each
// line by item_type, then storage_system_price_breakdown for the
// storage-side discounts/incentives. The discounts line doubles as the
// price-before-incentives capture point via its running total.
func AggregateBreakdown(p entities.PricingDocument, systemSizeWatts int) BreakdownTotals {
	var t BreakdownTotals

	for _, item := range p.SystemPriceBreakdown {
		switch item.ItemType {
		case entities.ItemTypeBasePrice:
			t.BasePrice = Round2(item.ItemPrice.Float())
		case entities.ItemTypeAdders:
			t.TotalAdders = Round2(item.ItemPrice.Float())
		case entities.ItemTypeDiscounts:
			t.TotalDiscounts = Round2(item.ItemPrice.Float())
			t.SolarPriceBeforeIncentives = item.CumulativePrice.Float()
		case entities.ItemTypeIncentives:
			t.SolarIncentivesTotal = item.ItemPrice.Float()
		}
	}

	for _, item := range p.StorageSystemPriceBreakdown {
		switch item.ItemType {
		case entities.ItemTypeDiscounts:
			t.StoragePriceBeforeIncentives = item.CumulativePrice.Float()
		case entities.ItemTypeIncentives:
			t.StorageIncentivesTotal = item.ItemPrice.Float()
		}
	}

	t.IncentivesTotal = t.SolarIncentivesTotal + t.StorageIncentivesTotal
	t.TotalPriceBeforeIncentives = t.SolarPriceBeforeIncentives + t.StoragePriceBeforeIncentives
	t.FinalSystemPrice = Round2(p.SystemPrice.Float())

	if systemSizeWatts > 0 && t.FinalSystemPrice > 0 {
		t.GrossPricePerWatt = Round4(t.FinalSystemPrice / float64(systemSizeWatts))
	}
	return t
}

// LineDetail is one adder/discount subcomponent as persisted in the
// snapshot's detail blobs.
type LineDetail struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Total    float64 `json:"total"`
}

// BreakdownDetails collects every adders/discounts subcomponent into two
// ordered detail lists and serializes each to a JSON text blob. Order
// follows the breakdown; no de-duplication.
func BreakdownDetails(p entities.PricingDocument) (adderDetails, discountDetails string) {
	adders := make([]LineDetail, 0)
	discounts := make([]LineDetail, 0)

	for _, item := range p.SystemPriceBreakdown {
		var dst *[]LineDetail
		switch item.ItemType {
		case entities.ItemTypeAdders:
			dst = &adders
		case entities.ItemTypeDiscounts:
			dst = &discounts
		default:
			continue
		}
		for _, sub := range item.Subcomponents {
			*dst = append(*dst, LineDetail{
				Name:     sub.AdderName,
				Quantity: sub.Quantity.Float(),
				Total:    sub.ItemPrice.Float(),
			})
		}
	}

	return marshalDetails(adders), marshalDetails(discounts)
}

func marshalDetails(list []LineDetail) string {
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// AdderNameLists builds the comma-joined adder and discount name strings
// from the flat adders list, order preserved, no de-duplication.
func AdderNameLists(adders []entities.AdderLine) (adderNames, discountNames string) {
	var a, d []string
	for _, line := range adders {
		if line.IsDiscount {
			d = append(d, line.AdderName)
		} else {
			a = append(a, line.AdderName)
		}
	}
	return strings.Join(a, ", "), strings.Join(d, ", ")
}
