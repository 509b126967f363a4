package types

// BudgetMode selects the aggregation view: the full trip cost or only the
// current user's attributed share.
type BudgetMode string

const (
	BudgetModeShared BudgetMode = "shared"
	BudgetModeMine   BudgetMode = "mine"
)

// IsValid checks if the mode is a valid budget mode.
func (m BudgetMode) IsValid() bool {
	return m == BudgetModeShared || m == BudgetModeMine
}

// BudgetLimits holds a per-trip, per-mode spending target. It is stored
// independently of actual spend records and is display-only.
type BudgetLimits struct {
	TripID     int64                      `json:"tripId"`
	Mode       BudgetMode                 `json:"mode"`
	Total      float64                    `json:"total"`
	Categories map[BudgetCategory]float64 `json:"categories"`
}

// BudgetLine is one aggregated spend entry.
type BudgetLine struct {
	Label    string         `json:"label"`
	Amount   float64        `json:"amount"`
	Category BudgetCategory `json:"category"`
	Source   string         `json:"source"` // "hotel", "flight", "transport", "place", "shopping", "expense"
}

// CategorySummary is the roll-up for a single category.
type CategorySummary struct {
	Total float64      `json:"total"`
	Items []BudgetLine `json:"items"`
}

// BudgetReport is the full aggregation for a trip under one mode. Remaining
// figures are present only when limits are stored for the mode; overspend is
// reported, never blocked.
type BudgetReport struct {
	Mode       BudgetMode                          `json:"mode"`
	Total      float64                             `json:"total"`
	Categories map[BudgetCategory]*CategorySummary `json:"categories"`
	Limits     *BudgetLimits                       `json:"limits,omitempty"`
	Remaining  *float64                            `json:"remaining,omitempty"`
}
