package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"planejador/internal/core"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestAppendPlanning(t *testing.T) {
	dir := t.TempDir()
	timeline := []core.YearMonth{core.NewYearMonth(2024, 11), core.NewYearMonth(2024, 12), core.NewYearMonth(2025, 1)}
	balances := []decimal.Decimal{dec("100"), dec("-200.5"), dec("1234.56")}

	// Names arrive unsorted; the report sorts them.
	if err := AppendPlanning(dir, "Bruno", "Ana", timeline, balances); err != nil {
		t.Fatalf("AppendPlanning: %v", err)
	}

	want := "Nome 1;Nome 2;11/2024;12/2024;01/2025\n" +
		"Ana;Bruno;R$ 100,00;R$ -200,50;R$ 1234,56\n"
	if got := readFile(t, dir, PlanningFile); got != want {
		t.Fatalf("planning content:\n%q\nwant:\n%q", got, want)
	}

	// A second couple appends below the first.
	if err := AppendPlanningNoExpenses(dir, "111", "222"); err != nil {
		t.Fatalf("AppendPlanningNoExpenses: %v", err)
	}
	want += "Casal com CPFs 111 e 222 não possui gastos cadastrados.\n"
	if got := readFile(t, dir, PlanningFile); got != want {
		t.Fatalf("after append:\n%q\nwant:\n%q", got, want)
	}
}

func TestResetPlanning(t *testing.T) {
	dir := t.TempDir()
	if err := ResetPlanning(dir); err != nil {
		t.Fatalf("ResetPlanning on missing file: %v", err)
	}
	if err := AppendPlanningNoExpenses(dir, "1", "2"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := ResetPlanning(dir); err != nil {
		t.Fatalf("ResetPlanning: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, PlanningFile)); !os.IsNotExist(err) {
		t.Fatalf("planning file still exists after reset")
	}
}

func TestWriteProviders(t *testing.T) {
	dir := t.TempDir()
	stats := []core.ProviderStat{
		{Category: core.CategoryIndividual, Name: "Davi", Total: dec("800")},
		{Category: core.CategoryOrganization, Name: "Buffet Azul", Total: dec("0")},
		{Category: core.CategoryStore, Name: "Loja Verde", Total: dec("120.5")},
	}
	if err := WriteProviders(dir, stats); err != nil {
		t.Fatalf("WriteProviders: %v", err)
	}
	want := "PF;Davi;R$ 800,00\nPJ;Buffet Azul;R$ 0,00\nLoja;Loja Verde;R$ 120,50\n"
	if got := readFile(t, dir, ProvidersFile); got != want {
		t.Fatalf("providers content: %q, want %q", got, want)
	}
}

func TestWriteCouples(t *testing.T) {
	dir := t.TempDir()
	stats := []core.CoupleStat{
		{Couple: core.NewCouple("Bruno", "Ana"), Total: dec("900"), SharedParties: 2},
		{Couple: core.NewCouple("Clara", "Davi"), Total: dec("0"), SharedParties: 0},
	}
	if err := WriteCouples(dir, stats); err != nil {
		t.Fatalf("WriteCouples: %v", err)
	}
	want := "Ana;Bruno;R$ 900,00;2\nClara;Davi;R$ 0,00;0\n"
	if got := readFile(t, dir, CouplesFile); got != want {
		t.Fatalf("couples content: %q, want %q", got, want)
	}
}

func TestWriteEmptyAll(t *testing.T) {
	dir := t.TempDir()
	if err := AppendPlanningNoExpenses(dir, "1", "2"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := WriteEmptyAll(dir); err != nil {
		t.Fatalf("WriteEmptyAll: %v", err)
	}
	for _, name := range []string{PlanningFile, ProvidersFile, CouplesFile} {
		if got := readFile(t, dir, name); got != "" {
			t.Fatalf("%s not empty: %q", name, got)
		}
	}
}
