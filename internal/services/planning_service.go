package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"planejador/internal/core"
	applog "planejador/internal/log"
	"planejador/internal/report"
	"planejador/internal/storage"
)

var (
	ErrInvalidPair   = errors.New("malformed couple pair")
	ErrUnknownCouple = errors.New("couple not registered")
)

// PlanningService orchestrates a full run: load the record store, validate
// it, simulate every requested couple, and write the three reports. It is
// the single place that forces the empty reports when a fatal error aborts
// the run.
type PlanningService struct {
	dir    string
	logger *applog.Logger
}

func NewPlanningService(dir string, logger *applog.Logger) *PlanningService {
	return &PlanningService{
		dir:    dir,
		logger: logger.WithComponent(applog.ComponentPlanner),
	}
}

// Run processes the couple pairs supplied by the reader against the CSV
// files in the service directory. Couples are handled in input order and the
// planning report grows incrementally, one couple at a time. Any load,
// validation or couple-resolution failure forces the empty reports and
// aborts the whole run.
func (s *PlanningService) Run(pairs io.Reader) error {
	store, err := storage.LoadDir(s.dir)
	if err != nil {
		return s.abort(fmt.Errorf("load input: %w", err))
	}
	s.logger.Debug("record store loaded",
		"people", len(store.People),
		"households", len(store.Households),
		"tasks", len(store.Tasks),
		"weddings", len(store.Weddings),
		"parties", len(store.Parties),
		"purchases", len(store.Purchases))

	lines, err := storage.ReadCoupleLines(pairs)
	if err != nil {
		return s.abort(err)
	}

	if err := report.ResetPlanning(s.dir); err != nil {
		return err
	}

	if err := NewValidator(store, s.logger).Run(); err != nil {
		return s.abort(err)
	}

	aggregator := NewAggregator(store)
	var couples []core.Couple
	totals := map[core.Couple]core.CoupleStat{}

	for _, line := range lines {
		cpf1, cpf2, err := splitPair(line)
		if err != nil {
			return s.abort(err)
		}

		p1, ok1 := store.IndividualByCPF(cpf1)
		p2, ok2 := store.IndividualByCPF(cpf2)
		if !ok1 || !ok2 {
			return s.abort(fmt.Errorf("%w: %s, %s", ErrUnknownCouple, cpf1, cpf2))
		}

		expenses := aggregator.CoupleExpenses(p1.ID, p2.ID)
		sim := Simulate(p1.Individual, p2.Individual, expenses)

		if len(sim.Timeline) == 0 {
			if err := report.AppendPlanningNoExpenses(s.dir, cpf1, cpf2); err != nil {
				return err
			}
		} else if err := report.AppendPlanning(s.dir, p1.Name, p2.Name, sim.Timeline, sim.Balances); err != nil {
			return err
		}

		couple := core.NewCouple(p1.Name, p2.Name)
		couples = append(couples, couple)
		stat := totals[couple]
		stat.Couple = couple
		stat.Total = TotalSpend(expenses)
		stat.SharedParties += SharedPartyCount(store, p1.ID, p2.ID, p1.Name, p2.Name)
		totals[couple] = stat

		s.logger.Debug("couple processed",
			applog.FieldCouple, couple.Name1+" e "+couple.Name2,
			applog.FieldExpenses, len(expenses),
			applog.FieldMonths, len(sim.Timeline))
	}

	if err := report.WriteProviders(s.dir, ProviderStatistics(store)); err != nil {
		return err
	}

	// One row per processed pair, so a couple requested twice appears twice,
	// carrying its accumulated totals.
	stats := make([]core.CoupleStat, len(couples))
	for i, couple := range couples {
		stats[i] = totals[couple]
	}
	SortCoupleStats(stats)
	if err := report.WriteCouples(s.dir, stats); err != nil {
		return err
	}

	s.logger.Info("planning run completed", "couples", len(couples))
	return nil
}

// abort forces the empty reports and passes the fatal error through.
func (s *PlanningService) abort(err error) error {
	if writeErr := report.WriteEmptyAll(s.dir); writeErr != nil {
		s.logger.Error("failed to write empty reports", applog.FieldError, writeErr)
	}
	return err
}

func splitPair(line string) (string, string, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPair, line)
	}
	cpf1 := strings.TrimSpace(parts[0])
	cpf2 := strings.TrimSpace(parts[1])
	if cpf1 == "" || cpf2 == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPair, line)
	}
	return cpf1, cpf2, nil
}
