package derive

import (
	"testing"

	"helio_sync/internal/domain/entities"
)

func samplePricing() entities.PricingDocument {
	return entities.PricingDocument{
		PricingMethod: "Price Per Watt",
		PricePerWatt:  3.05,
		SystemPrice:   40260.5,
		SystemPriceBreakdown: []entities.BreakdownItem{
			{ItemType: entities.ItemTypeBasePrice, ItemPrice: 40260, CumulativePrice: 40260},
			{
				ItemType:        entities.ItemTypeAdders,
				ItemPrice:       2000.25,
				CumulativePrice: 42260.25,
				Subcomponents: []entities.Subcomponent{
					{AdderName: "EV Charger", Quantity: 1, ItemPrice: 1200},
					{AdderName: "A - Consultant Comp", Quantity: 13200, ItemPrice: 800.25},
				},
			},
			{
				ItemType:        entities.ItemTypeDiscounts,
				ItemPrice:       -500.5,
				CumulativePrice: 41759.75,
				Subcomponents: []entities.Subcomponent{
					{AdderName: "Promo Discount", Quantity: 13200, ItemPrice: -500.5},
				},
			},
			{ItemType: entities.ItemTypeIncentives, ItemPrice: -3000.25, CumulativePrice: 38759.5},
		},
		StorageSystemPriceBreakdown: []entities.BreakdownItem{
			{ItemType: entities.ItemTypeDiscounts, ItemPrice: -100, CumulativePrice: 10000.25},
			{ItemType: entities.ItemTypeIncentives, ItemPrice: -1000.5, CumulativePrice: 8999.75},
		},
		Adders: []entities.AdderLine{
			{AdderName: "EV Charger", AdderValue: 1200},
			{AdderName: "A - Consultant Comp", AdderValue: 0.12},
			{AdderName: "Promo Discount", AdderValue: 0.05, IsDiscount: true},
		},
	}
}

func TestAggregateBreakdown(t *testing.T) {
	totals := AggregateBreakdown(samplePricing(), 13200)

	if totals.BasePrice != 40260 {
		t.Fatalf("expected base price 40260, got %v", totals.BasePrice)
	}
	if totals.TotalAdders != 2000.25 {
		t.Fatalf("expected total adders 2000.25, got %v", totals.TotalAdders)
	}
	if totals.TotalDiscounts != -500.5 {
		t.Fatalf("expected total discounts -500.5, got %v", totals.TotalDiscounts)
	}
	if totals.SolarPriceBeforeIncentives != 41759.75 {
		t.Fatalf("expected solar price before incentives 41759.75, got %v", totals.SolarPriceBeforeIncentives)
	}
	if totals.SolarIncentivesTotal != -3000.25 {
		t.Fatalf("expected solar incentives -3000.25, got %v", totals.SolarIncentivesTotal)
	}
	if totals.StoragePriceBeforeIncentives != 10000.25 {
		t.Fatalf("expected storage price before incentives 10000.25, got %v", totals.StoragePriceBeforeIncentives)
	}
	if totals.StorageIncentivesTotal != -1000.5 {
		t.Fatalf("expected storage incentives -1000.5, got %v", totals.StorageIncentivesTotal)
	}
	if totals.IncentivesTotal != -4000.75 {
		t.Fatalf("expected incentives total -4000.75, got %v", totals.IncentivesTotal)
	}
	if totals.TotalPriceBeforeIncentives != 51760 {
		t.Fatalf("expected total price before incentives 51760, got %v", totals.TotalPriceBeforeIncentives)
	}
	if totals.FinalSystemPrice != 40260.5 {
		t.Fatalf("expected final system price 40260.5, got %v", totals.FinalSystemPrice)
	}
}

func TestAggregateBreakdown_GrossPricePerWatt(t *testing.T) {
	t.Run("rounded to four places", func(t *testing.T) {
		p := entities.PricingDocument{SystemPrice: 40260}
		totals := AggregateBreakdown(p, 13200)
		if totals.GrossPricePerWatt != 3.05 {
			t.Fatalf("expected 3.05, got %v", totals.GrossPricePerWatt)
		}
	})

	t.Run("zero when size is zero", func(t *testing.T) {
		p := entities.PricingDocument{SystemPrice: 40260}
		totals := AggregateBreakdown(p, 0)
		if totals.GrossPricePerWatt != 0 {
			t.Fatalf("expected 0, got %v", totals.GrossPricePerWatt)
		}
	})

	t.Run("zero when final price is zero", func(t *testing.T) {
		totals := AggregateBreakdown(entities.PricingDocument{}, 13200)
		if totals.GrossPricePerWatt != 0 {
			t.Fatalf("expected 0, got %v", totals.GrossPricePerWatt)
		}
	})
}

func TestAggregateBreakdown_EmptyDocumentDefaults(t *testing.T) {
	totals := AggregateBreakdown(entities.PricingDocument{}, 0)
	if totals != (BreakdownTotals{}) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestBreakdownDetails(t *testing.T) {
	adderDetails, discountDetails := BreakdownDetails(samplePricing())

	wantAdders := `[{"name":"EV Charger","quantity":1,"total":1200},{"name":"A - Consultant Comp","quantity":13200,"total":800.25}]`
	if adderDetails != wantAdders {
		t.Fatalf("expected %s, got %s", wantAdders, adderDetails)
	}

	wantDiscounts := `[{"name":"Promo Discount","quantity":13200,"total":-500.5}]`
	if discountDetails != wantDiscounts {
		t.Fatalf("expected %s, got %s", wantDiscounts, discountDetails)
	}
}

func TestBreakdownDetails_Empty(t *testing.T) {
	adderDetails, discountDetails := BreakdownDetails(entities.PricingDocument{})
	if adderDetails != "[]" || discountDetails != "[]" {
		t.Fatalf("expected empty lists, got %s / %s", adderDetails, discountDetails)
	}
}

func TestAdderNameLists(t *testing.T) {
	adderNames, discountNames := AdderNameLists(samplePricing().Adders)
	if adderNames != "EV Charger, A - Consultant Comp" {
		t.Fatalf("unexpected adder names: %q", adderNames)
	}
	if discountNames != "Promo Discount" {
		t.Fatalf("unexpected discount names: %q", discountNames)
	}
}

func TestAdderNameLists_KeepsOrderAndDuplicates(t *testing.T) {
	adders := []entities.AdderLine{
		{AdderName: "EV Charger"},
		{AdderName: "EV Charger"},
		{AdderName: "Ground Mount"},
	}
	adderNames, discountNames := AdderNameLists(adders)
	if adderNames != "EV Charger, EV Charger, Ground Mount" {
		t.Fatalf("unexpected adder names: %q", adderNames)
	}
	if discountNames != "" {
		t.Fatalf("expected empty discount names, got %q", discountNames)
	}
}
