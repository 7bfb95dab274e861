package core

import "github.com/shopspring/decimal"

// Expense is a total cost spread evenly across a fixed number of monthly
// installments beginning at Start.
type Expense struct {
	Start       YearMonth
	Installment decimal.Decimal
	Parcels     int
}

// Total is the full amount over all installments, used for the couple
// statistics ranking.
func (e Expense) Total() decimal.Decimal {
	return e.Installment.Mul(decimal.NewFromInt(int64(e.Parcels)))
}
