package entities

// Milestone is the design lifecycle stage reported by Aurora (e.g. "sold")
// together with when it was recorded.
type Milestone struct {
	Milestone  string `json:"milestone"`
	ID         string `json:"id"`
	Notes      string `json:"notes"`
	RecordedAt string `json:"recorded_at"`
}

// DesignDocument is the Aurora design summary after envelope normalization.
//
// Only the fields the snapshot consumes are decoded; everything else stays
// in the raw payload embedded for audit. SystemSizeSTC is the legacy size
// field and is often absent or unreliable; the size resolver works off the
// pricing document instead.
type DesignDocument struct {
	Name          string    `json:"name"`
	CreatedAt     string    `json:"created_at"`
	Milestone     Milestone `json:"milestone"`
	SystemSizeSTC FlexFloat `json:"system_size_stc"`
}
