package services

import (
	"testing"

	"planejador/internal/core"
	"planejador/internal/storage"
)

func testStore() *storage.Store {
	return &storage.Store{
		People: []core.Person{
			{ID: "P1", Kind: core.KindIndividual, Name: "Ana", Individual: &core.Individual{CPF: "111"}},
			{ID: "P2", Kind: core.KindIndividual, Name: "Bruno", Individual: &core.Individual{CPF: "222"}},
			{ID: "P3", Kind: core.KindIndividual, Name: "Clara", Individual: &core.Individual{CPF: "333"}},
			{ID: "P4", Kind: core.KindOrganization, Name: "Buffet Azul", Registration: "900"},
			{ID: "P5", Kind: core.KindStore, Name: "Loja Verde", Registration: "901"},
		},
		Households: []core.Household{
			{ID: "L1", Owner1: "P1", Owner2: "P2"},
			{ID: "L2", Owner1: "P3", Owner2: "P1"},
		},
		Weddings: []core.Wedding{
			{ID: "C1", Spouse1: "P2", Spouse2: "P1"},
		},
		Tasks: []core.Task{
			{ID: "T1", HouseholdID: "L1", ProviderID: "P4", Start: core.NewYearMonth(2024, 1), Value: dec("1200"), Parcels: 12},
			{ID: "T2", HouseholdID: "L2", ProviderID: "P4", Start: core.NewYearMonth(2024, 3), Value: dec("500"), Parcels: 5},
		},
		Parties: []core.Party{
			{ID: "F1", WeddingID: "C1", Start: core.NewYearMonth(2024, 6), Amount: dec("2400"), Parcels: 4, Guests: []string{"Clara", "Davi"}},
		},
		Purchases: []core.Purchase{
			{ID: "X1", TaskID: "T1", StoreID: "P5", Quantity: 3, UnitPrice: dec("50"), Parcels: 2},
			{ID: "X2", TaskID: "T2", StoreID: "P5", Quantity: 1, UnitPrice: dec("99"), Parcels: 1},
		},
	}
}

func TestCoupleExpenses(t *testing.T) {
	agg := NewAggregator(testStore())

	// Owner order must not matter.
	for _, pair := range [][2]string{{"P1", "P2"}, {"P2", "P1"}} {
		expenses := agg.CoupleExpenses(pair[0], pair[1])
		if len(expenses) != 3 {
			t.Fatalf("expected task+party+purchase expenses, got %d", len(expenses))
		}

		// Task T1: 1200 over 12 from Jan 2024.
		task := expenses[0]
		if task.Start != core.NewYearMonth(2024, 1) || task.Parcels != 12 || !task.Installment.Equal(dec("100")) {
			t.Fatalf("task expense mismatch: %+v", task)
		}

		// Party F1: 2400 over 4 from Jun 2024.
		party := expenses[1]
		if party.Start != core.NewYearMonth(2024, 6) || party.Parcels != 4 || !party.Installment.Equal(dec("600")) {
			t.Fatalf("party expense mismatch: %+v", party)
		}

		// Purchase X1: 3x50 over 2, amortizing from its task's start month.
		purchase := expenses[2]
		if purchase.Start != core.NewYearMonth(2024, 1) || purchase.Parcels != 2 || !purchase.Installment.Equal(dec("75")) {
			t.Fatalf("purchase expense mismatch: %+v", purchase)
		}
	}
}

func TestCoupleExpensesOtherHousehold(t *testing.T) {
	agg := NewAggregator(testStore())

	// Clara and Ana own L2: one task and one purchase, no party.
	expenses := agg.CoupleExpenses("P3", "P1")
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses for L2, got %d", len(expenses))
	}
	if !expenses[0].Installment.Equal(dec("100")) {
		t.Fatalf("T2 installment = %s, want 100", expenses[0].Installment)
	}
	if !expenses[1].Installment.Equal(dec("99")) {
		t.Fatalf("X2 installment = %s, want 99", expenses[1].Installment)
	}
}

func TestCoupleExpensesMonthlyLedgerProperty(t *testing.T) {
	// A single 1200/12 task produces exactly 100 per month over Jan-Dec 2024.
	agg := NewAggregator(testStore())
	expenses := agg.CoupleExpenses("P1", "P2")[:1]
	sim := Simulate(individual("0", "0", "0"), individual("0", "0", "0"), expenses)
	if len(sim.Timeline) != 12 {
		t.Fatalf("timeline length = %d, want 12", len(sim.Timeline))
	}
	if sim.Timeline[0] != core.NewYearMonth(2024, 1) || sim.Timeline[11] != core.NewYearMonth(2024, 12) {
		t.Fatalf("timeline range = %v .. %v", sim.Timeline[0], sim.Timeline[11])
	}
}

func TestCoupleExpensesUnrelatedCouple(t *testing.T) {
	agg := NewAggregator(testStore())
	if expenses := agg.CoupleExpenses("P2", "P3"); len(expenses) != 0 {
		t.Fatalf("expected no expenses, got %+v", expenses)
	}
}
