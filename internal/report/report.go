// Package report writes the three CSV outputs. It consumes computed values
// only; all decisions about what to write are made by the services layer.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"planejador/internal/core"
)

// Output file names, written to the same directory as the input.
const (
	PlanningFile  = "1-planejamento.csv"
	ProvidersFile = "2-estatisticas-prestadores.csv"
	CouplesFile   = "3-estatisticas-casais.csv"
)

// ResetPlanning removes a previous planning report so the run can append to a
// fresh file.
func ResetPlanning(dir string) error {
	err := os.Remove(filepath.Join(dir, PlanningFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reset planning report: %w", err)
	}
	return nil
}

// WriteEmptyAll forces all three reports to their empty form. Called exactly
// once, by the orchestrator, when a fatal error aborts the run.
func WriteEmptyAll(dir string) error {
	for _, name := range []string{PlanningFile, ProvidersFile, CouplesFile} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			return fmt.Errorf("write empty report %s: %w", name, err)
		}
	}
	return nil
}

// AppendPlanning appends one header+data line pair for a couple: month
// headers after the two names, then the balance after each month. Names are
// written in alphabetical order.
func AppendPlanning(dir, name1, name2 string, timeline []core.YearMonth, balances []decimal.Decimal) error {
	if name2 < name1 {
		name1, name2 = name2, name1
	}

	var b strings.Builder
	b.WriteString("Nome 1;Nome 2")
	for _, month := range timeline {
		b.WriteString(";")
		b.WriteString(month.String())
	}
	b.WriteString("\n")
	b.WriteString(name1)
	b.WriteString(";")
	b.WriteString(name2)
	for _, balance := range balances {
		b.WriteString(";")
		b.WriteString(core.FormatBRL(balance))
	}
	b.WriteString("\n")

	return appendTo(filepath.Join(dir, PlanningFile), b.String())
}

// AppendPlanningNoExpenses appends the descriptive line used for a couple
// with nothing to amortize.
func AppendPlanningNoExpenses(dir, cpf1, cpf2 string) error {
	line := fmt.Sprintf("Casal com CPFs %s e %s não possui gastos cadastrados.\n", cpf1, cpf2)
	return appendTo(filepath.Join(dir, PlanningFile), line)
}

// WriteProviders writes the ranked provider statistics, one
// category;name;amount line per entry.
func WriteProviders(dir string, stats []core.ProviderStat) error {
	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "%s;%s;%s\n", s.Category, s.Name, core.FormatBRL(s.Total))
	}
	return writeTo(filepath.Join(dir, ProvidersFile), b.String())
}

// WriteCouples writes the couple statistics in the order given, one
// name1;name2;total;sharedParties line per couple.
func WriteCouples(dir string, stats []core.CoupleStat) error {
	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "%s;%s;%s;%d\n", s.Couple.Name1, s.Couple.Name2, core.FormatBRL(s.Total), s.SharedParties)
	}
	return writeTo(filepath.Join(dir, CouplesFile), b.String())
}

func appendTo(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("append to %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeTo(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
