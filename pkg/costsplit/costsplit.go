// Package costsplit holds the pure money arithmetic shared by confirmation
// flows and the budget aggregation: price-string parsing, payer splits, and
// per-mode amount resolution.
package costsplit

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/triplogue/triplogue-backend/types"
)

// SplitMode selects how a confirmed cost is divided between payers.
type SplitMode string

const (
	SplitEqual  SplitMode = "equal"
	SplitCustom SplitMode = "custom"
)

// ParsePrice extracts a numeric amount from a free-text price string by
// stripping every character that is not a digit or a decimal point.
// "£1,234.56" parses to 1234.56; empty or unparseable input yields 0.
func ParsePrice(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Equal divides the total evenly between the selected payers, rounding each
// share to the cent and assigning the rounding remainder to the first payer
// so the shares always sum back to the total. An empty payer set yields an
// empty split rather than a division by zero.
func Equal(total float64, payerIDs []string) []types.PayerShare {
	if len(payerIDs) == 0 {
		return nil
	}

	totalDec := decimal.NewFromFloat(total)
	count := decimal.NewFromInt(int64(len(payerIDs)))
	share := totalDec.DivRound(count, 2)

	shares := make([]types.PayerShare, 0, len(payerIDs))
	for i, id := range payerIDs {
		amount := share
		if i == 0 {
			// First payer absorbs the rounding remainder.
			amount = totalDec.Sub(share.Mul(decimal.NewFromInt(int64(len(payerIDs) - 1))))
		}
		f, _ := amount.Float64()
		shares = append(shares, types.PayerShare{PayerID: id, Amount: f})
	}
	return shares
}

// Custom builds a split from explicit per-payer amounts. A selected payer
// with no entered amount gets zero.
func Custom(payerIDs []string, amounts map[string]float64) []types.PayerShare {
	if len(payerIDs) == 0 {
		return nil
	}

	shares := make([]types.PayerShare, 0, len(payerIDs))
	for _, id := range payerIDs {
		shares = append(shares, types.PayerShare{PayerID: id, Amount: amounts[id]})
	}
	return shares
}

// SplitTotal sums a payer list.
func SplitTotal(shares []types.PayerShare) float64 {
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(decimal.NewFromFloat(s.Amount))
	}
	f, _ := sum.Float64()
	return f
}

// UserShare returns the amount attributed to one user within a split, zero
// when the user is not listed.
func UserShare(shares []types.PayerShare, userID string) float64 {
	sum := decimal.Zero
	for _, s := range shares {
		if s.PayerID == userID {
			sum = sum.Add(decimal.NewFromFloat(s.Amount))
		}
	}
	f, _ := sum.Float64()
	return f
}

// Resolve collapses the three stored cost representations (numeric cost,
// payer split, free-text price) into a single amount for the given view
// mode. In mine mode only the user's split entry counts; in shared mode the
// explicit cost wins, then the split sum, then the parsed price string.
func Resolve(cost *float64, paidBy []types.PayerShare, price string, mode types.BudgetMode, userID string) float64 {
	if mode == types.BudgetModeMine {
		return UserShare(paidBy, userID)
	}

	if cost != nil {
		return *cost
	}
	if len(paidBy) > 0 {
		return SplitTotal(paidBy)
	}
	return ParsePrice(price)
}
