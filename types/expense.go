package types

import "time"

type BudgetCategory string

const (
	CategoryAccommodation BudgetCategory = "accommodation"
	CategoryTravel        BudgetCategory = "travel"
	CategoryFood          BudgetCategory = "food"
	CategoryShopping      BudgetCategory = "shopping"
	CategoryMiscellaneous BudgetCategory = "miscellaneous"
	CategoryOther         BudgetCategory = "other"
)

// BudgetCategories lists every category in display order.
var BudgetCategories = []BudgetCategory{
	CategoryAccommodation,
	CategoryTravel,
	CategoryFood,
	CategoryShopping,
	CategoryMiscellaneous,
	CategoryOther,
}

// IsValid checks if the category is one of the six budget categories.
func (c BudgetCategory) IsValid() bool {
	switch c {
	case CategoryAccommodation, CategoryTravel, CategoryFood,
		CategoryShopping, CategoryMiscellaneous, CategoryOther:
		return true
	default:
		return false
	}
}

// Expense is a manually recorded spend. Shared-mode expenses may carry a
// payer split; personal expenses belong to a single user's namespace.
type Expense struct {
	ID        int64          `json:"id"`
	TripID    int64          `json:"tripId"`
	Label     string         `json:"label"`
	Amount    float64        `json:"amount"`
	Category  BudgetCategory `json:"category"`
	PaidBy    []PayerShare   `json:"paidBy,omitempty"`
	Mode      ListMode       `json:"mode"`
	CreatedBy string         `json:"createdByUid"`
	CreatedAt time.Time      `json:"createdAt"`
}
