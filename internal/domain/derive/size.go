package derive

import (
	"math"
	"strings"

	"helio_sync/internal/domain/entities"
)

// Subcomponent quantities below this are flat per-unit counts ("1
// inverter"), not watt-denominated. Empirical threshold carried over from
// the original service; do not tune.
const sizeQuantityFloor = 1000

// SystemSizeWatts resolves total system wattage from the pricing document.
//
// Primary path: base price divided by price-per-watt, authoritative
// whenever the pricing method says "price per watt" and both inputs are
// positive. Fallback: the largest adders/discounts subcomponent quantity at
// or above the floor — per-watt modifiers carry the full system wattage as
// their quantity, and smaller qualifying quantities are assumed to be
// partial or component-level. Default 0.
func SystemSizeWatts(p entities.PricingDocument) int {
	method := strings.ToLower(strings.TrimSpace(p.PricingMethod))

	basePriceForSize := 0.0
	for _, item := range p.SystemPriceBreakdown {
		if item.ItemType == entities.ItemTypeBasePrice {
			basePriceForSize = item.ItemPrice.Float()
		}
	}
	ppw := p.PricePerWatt.Float()

	if strings.Contains(method, "price per watt") && ppw > 0 && basePriceForSize > 0 {
		return int(math.Round(basePriceForSize / ppw))
	}

	best := 0.0
	for _, item := range p.SystemPriceBreakdown {
		if item.ItemType != entities.ItemTypeAdders && item.ItemType != entities.ItemTypeDiscounts {
			continue
		}
		for _, sub := range item.Subcomponents {
			q := sub.Quantity.Float()
			if q >= sizeQuantityFloor && q > best {
				best = q
			}
		}
	}
	return int(math.Round(best))
}
