package services

import (
	"github.com/shopspring/decimal"

	"planejador/internal/core"
	"planejador/internal/storage"
)

// Aggregator converts the tasks, parties and purchases tied to a couple's
// household and wedding into amortized expenses.
type Aggregator struct {
	store *storage.Store
}

func NewAggregator(store *storage.Store) *Aggregator {
	return &Aggregator{store: store}
}

// CoupleExpenses collects every amortized expense belonging to the couple
// identified by the two person ids. Sources are not deduplicated: a task and
// the purchases linked to it each contribute their own expense.
func (a *Aggregator) CoupleExpenses(id1, id2 string) []core.Expense {
	var expenses []core.Expense

	for _, task := range a.store.Tasks {
		household, ok := a.store.HouseholdByID(task.HouseholdID)
		if !ok || !household.OwnedBy(id1, id2) {
			continue
		}
		expenses = append(expenses, core.Expense{
			Start:       task.Start,
			Installment: task.Value.Div(decimal.NewFromInt(int64(task.Parcels))),
			Parcels:     task.Parcels,
		})
	}

	for _, party := range a.store.Parties {
		wedding, ok := a.store.WeddingByID(party.WeddingID)
		if !ok || !wedding.Between(id1, id2) {
			continue
		}
		expenses = append(expenses, core.Expense{
			Start:       party.Start,
			Installment: party.Amount.Div(decimal.NewFromInt(int64(party.Parcels))),
			Parcels:     party.Parcels,
		})
	}

	for _, purchase := range a.store.Purchases {
		task, ok := a.store.TaskByID(purchase.TaskID)
		if !ok {
			continue
		}
		household, ok := a.store.HouseholdByID(task.HouseholdID)
		if !ok || !household.OwnedBy(id1, id2) {
			continue
		}
		total := purchase.UnitPrice.Mul(decimal.NewFromInt(int64(purchase.Quantity)))
		expenses = append(expenses, core.Expense{
			// Purchases have no date of their own; they amortize from the
			// month their task starts.
			Start:       task.Start,
			Installment: total.Div(decimal.NewFromInt(int64(purchase.Parcels))),
			Parcels:     purchase.Parcels,
		})
	}

	return expenses
}

// TotalSpend sums installment times parcel count over all expenses. It ranks
// couples in the statistics report and is independent of the month-by-month
// simulation.
func TotalSpend(expenses []core.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Total())
	}
	return total
}
