package entities

// Breakdown item categories used by Aurora's itemized price summary.
// Sign convention is category-based, not per-line.
const (
	ItemTypeBasePrice  = "base_price"
	ItemTypeAdders     = "adders"
	ItemTypeDiscounts  = "discounts"
	ItemTypeIncentives = "incentives"
)

// Component categories in pricing_by_component.
const (
	ComponentTypeModules      = "modules"
	ComponentTypeInverters    = "inverters"
	ComponentTypeDCOptimizers = "dc_optimizers"
	ComponentTypeBatteries    = "batteries"
)

// Subcomponent is one named line inside an adders/discounts breakdown item.
// For per-watt modifiers the quantity carries the system wattage.
type Subcomponent struct {
	AdderName string    `json:"adder_name"`
	Quantity  FlexFloat `json:"quantity"`
	ItemPrice FlexFloat `json:"item_price"`
}

// BreakdownItem is one line of the itemized price summary. CumulativePrice
// is the running total at that point in the list.
type BreakdownItem struct {
	ItemType        string         `json:"item_type"`
	ItemPrice       FlexFloat      `json:"item_price"`
	CumulativePrice FlexFloat      `json:"cumulative_price"`
	Subcomponents   []Subcomponent `json:"subcomponents"`
}

// AdderLine is one entry of the flat adders list. AdderValue is a
// price-per-watt for the commission-relevant labels.
type AdderLine struct {
	AdderName  string    `json:"adder_name"`
	AdderValue FlexFloat `json:"adder_value"`
	IsDiscount bool      `json:"is_discount"`
}

type ComponentLine struct {
	ComponentType string    `json:"component_type"`
	Name          string    `json:"name"`
	Quantity      FlexFloat `json:"quantity"`
	Price         FlexFloat `json:"price"`
}

type IncentiveLine struct {
	Name   string    `json:"name"`
	Amount FlexFloat `json:"amount"`
}

// PricingDocument is the Aurora pricing detail after envelope normalization.
type PricingDocument struct {
	PricingMethod               string          `json:"pricing_method"`
	PricePerWatt                FlexFloat       `json:"price_per_watt"`
	SystemPrice                 FlexFloat       `json:"system_price"`
	SystemPriceBreakdown        []BreakdownItem `json:"system_price_breakdown"`
	StorageSystemPriceBreakdown []BreakdownItem `json:"storage_system_price_breakdown"`
	Adders                      []AdderLine     `json:"adders"`
	PricingByComponent          []ComponentLine `json:"pricing_by_component"`
	Incentives                  []IncentiveLine `json:"incentives"`
}
