package entities

// Lookup is a Zoho record reference.
type Lookup struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Install is the CRM install record matched by project id. Read-only input:
// the sync only consumes its id, redline formula field and opportunity link.
type Install struct {
	ID                 string    `json:"id"`
	SalesOrgRedlinePPW FlexFloat `json:"Sales_Org_Redline_PPW"`
	ActiveSnapshot     *Lookup   `json:"Active_Snapshot"`
	Opportunity        *Lookup   `json:"Opportunity"`
}
