package entities

// Snapshot is the immutable audit record written to the Zoho
// Design_Snapshots module when a milestone event is processed. The JSON
// tags are the exact Zoho field API names; renaming any of them breaks the
// CRM schema contract.
//
// A snapshot is created once per webhook event and never mutated.
type Snapshot struct {
	Name        string  `json:"Name"`
	Install     *Lookup `json:"Install,omitempty"`
	Opportunity *Lookup `json:"Opportunity,omitempty"`
	ProjectID   string  `json:"Project_ID"`
	DesignID    string  `json:"Design_ID"`

	DesignName      string `json:"Design_Name"`
	DesignCreatedAt string `json:"Design_Created_At,omitempty"`
	Milestone       string `json:"Milestone"`
	MilestoneID     string `json:"Milestone_ID"`
	MilestoneNotes  string `json:"Milestone_Notes"`
	MilestoneTime   string `json:"Milestone_Time,omitempty"`

	PricingMethod     string  `json:"Pricing_Method"`
	SystemSizeWatts   int     `json:"System_Size_Watts"`
	PricePerWatt      float64 `json:"Price_Per_Watt"`
	GrossPricePerWatt float64 `json:"Gross_Price_Per_Watt"`

	BasePrice        float64 `json:"Base_Price"`
	TotalAdders      float64 `json:"Total_Adders"`
	TotalDiscounts   float64 `json:"Total_Discounts"`
	FinalSystemPrice float64 `json:"Final_System_Price"`

	SolarIncentivesTotal         float64 `json:"Solar_Incentives_Total"`
	StorageIncentivesTotal       float64 `json:"Storage_Incentives_Total"`
	IncentivesTotal              float64 `json:"Incentives_Total"`
	SolarPriceBeforeIncentives   float64 `json:"Solar_Price_Before_Incentives"`
	StoragePriceBeforeIncentives float64 `json:"Storage_Price_Before_Incentives"`
	TotalPriceBeforeIncentives   float64 `json:"Total_Price_Before_Incentives"`

	AdderDetails     string `json:"Adder_Details"`
	DiscountDetails  string `json:"Discount_Details"`
	AdderNameList    string `json:"Adder_Name_List"`
	DiscountNameList string `json:"Discount_Name_List"`

	ConsultantCompPPW    float64 `json:"Consultant_Comp_PPW"`
	HelioLeadFeePPW      float64 `json:"Helio_Lead_Fee_PPW"`
	ReferralPayout       float64 `json:"Referral_Payout"`
	ESUplineDiscountPPW  float64 `json:"ES_Upline_Discount_PPW"`
	EVPUplineDiscountPPW float64 `json:"EVP_Upline_Discount_PPW"`
	SalesOrgRedlinePPW   float64 `json:"Sales_Org_Redline_PPW"`
	RedlineAtSale        float64 `json:"Redline_At_Sale"`

	ModuleModel      string  `json:"Module_Model"`
	ModuleCount      int     `json:"Module_Count"`
	InverterModel    string  `json:"Inverter_Model"`
	InverterCount    int     `json:"Inverter_Count"`
	OptimizerCount   int     `json:"Optimizer_Count"`
	BatteryModel     string  `json:"Battery_Model"`
	BatteryCount     int     `json:"Battery_Count"`
	BatteryBasePrice float64 `json:"Battery_Base_Price"`

	AuroraProjectLink string `json:"Aurora_Project_Link"`
	AuroraDesignLink  string `json:"Aurora_Design_Link"`

	RawDesignPayload  string `json:"Raw_Design_Payload"`
	RawPricingPayload string `json:"Raw_Pricing_Payload"`
	ProcessingStatus  string `json:"Processing_Status"`
}
