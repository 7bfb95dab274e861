package services

import (
	"github.com/shopspring/decimal"

	"planejador/internal/core"
)

// monthlyInterest is the savings yield applied at the start of every
// simulated month, before that month's flows.
var monthlyInterest = decimal.RequireFromString("1.005")

// bonusMonth is when the extra yearly salary is paid.
const bonusMonth = 12

// Simulation is the outcome of a couple's savings projection: an ordered
// month timeline and the balance after each month, same length and order.
// Both are empty when the couple has no expenses.
type Simulation struct {
	Timeline []core.YearMonth
	Balances []decimal.Decimal
}

// Simulate expands the amortized expenses into a month ledger, derives the
// inclusive earliest-to-latest timeline, and walks it month by month:
// interest first, then salaries (doubled per spouse with positive salary in
// December), then that month's obligations and the couple's fixed monthly
// expenses, rounding the balance to cents before carrying it forward.
func Simulate(p1, p2 *core.Individual, expenses []core.Expense) Simulation {
	if len(expenses) == 0 {
		return Simulation{}
	}

	ledger := map[core.YearMonth]decimal.Decimal{}
	first := expenses[0].Start
	last := expenses[0].Start
	for _, e := range expenses {
		for i := 0; i < e.Parcels; i++ {
			due := e.Start.Plus(i)
			ledger[due] = ledger[due].Add(e.Installment)
			if due.Before(first) {
				first = due
			}
			if due.After(last) {
				last = due
			}
		}
	}

	var timeline []core.YearMonth
	for current := first; !current.After(last); current = current.Plus(1) {
		timeline = append(timeline, current)
	}

	balance := p1.Savings.Add(p2.Savings)
	fixedExpenses := p1.MonthlyExpenses.Add(p2.MonthlyExpenses)
	salary := p1.Salary.Add(p2.Salary)

	balances := make([]decimal.Decimal, 0, len(timeline))
	for _, month := range timeline {
		income := salary
		if month.Month == bonusMonth {
			// The yearly bonus is paid per spouse, and only on positive
			// salaries; the base salary above was added unconditionally.
			if p1.Salary.IsPositive() {
				income = income.Add(p1.Salary)
			}
			if p2.Salary.IsPositive() {
				income = income.Add(p2.Salary)
			}
		}

		balance = balance.Mul(monthlyInterest)
		balance = balance.Add(income).Sub(ledger[month]).Sub(fixedExpenses)
		balance = balance.Round(2)
		balances = append(balances, balance)
	}

	return Simulation{Timeline: timeline, Balances: balances}
}
