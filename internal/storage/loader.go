package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"planejador/internal/core"
)

// Recognized input file names. Anything else in the directory is ignored.
const (
	PeopleFile     = "pessoas.csv"
	HouseholdsFile = "lares.csv"
	WeddingsFile   = "casamentos.csv"
	PartiesFile    = "festas.csv"
	TasksFile      = "tarefas.csv"
	PurchasesFile  = "compras.csv"
)

// LoadDir reads every recognized CSV file in dir into a new Store. Any
// malformed row (missing column, unparsable number, installment count below
// one, bad date) aborts the load; rows are never skipped.
func LoadDir(dir string) (*Store, error) {
	store := &Store{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		switch name {
		case PeopleFile:
			err = loadFile(path, func(row []string) error { return store.addPerson(row) })
		case HouseholdsFile:
			err = loadFile(path, func(row []string) error { return store.addHousehold(row) })
		case WeddingsFile:
			err = loadFile(path, func(row []string) error { return store.addWedding(row) })
		case PartiesFile:
			err = loadFile(path, func(row []string) error { return store.addParty(row) })
		case TasksFile:
			err = loadFile(path, func(row []string) error { return store.addTask(row) })
		case PurchasesFile:
			err = loadFile(path, func(row []string) error { return store.addPurchase(row) })
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return store, nil
}

func loadFile(path string, add func(row []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	for i, row := range rows {
		if err := add(row); err != nil {
			return fmt.Errorf("%s: row %d: %w", filepath.Base(path), i+1, err)
		}
	}
	return nil
}

func (s *Store) addPerson(row []string) error {
	if len(row) < 6 {
		return core.ErrMissingColumns
	}
	p := core.Person{
		ID:      row[0],
		Kind:    core.PersonKind(row[1]),
		Name:    row[2],
		Phone:   row[3],
		Address: row[4],
	}
	if p.Kind == core.KindIndividual {
		if len(row) < 10 {
			return core.ErrMissingColumns
		}
		savings, err := core.ParseAmount(row[7])
		if err != nil {
			return err
		}
		salary, err := core.ParseAmount(row[8])
		if err != nil {
			return err
		}
		monthly, err := core.ParseAmount(row[9])
		if err != nil {
			return err
		}
		p.Individual = &core.Individual{
			CPF:             row[5],
			BirthDate:       row[6],
			Savings:         savings,
			Salary:          salary,
			MonthlyExpenses: monthly,
		}
	} else {
		// Anything that is not an individual or organization is a store.
		if p.Kind != core.KindOrganization {
			p.Kind = core.KindStore
		}
		p.Registration = row[5]
	}
	s.People = append(s.People, p)
	return nil
}

func (s *Store) addHousehold(row []string) error {
	if len(row) < 6 {
		return core.ErrMissingColumns
	}
	number, err := parseInt(row[4])
	if err != nil {
		return err
	}
	s.Households = append(s.Households, core.Household{
		ID:         row[0],
		Owner1:     row[1],
		Owner2:     row[2],
		Street:     row[3],
		Number:     number,
		Complement: row[5],
	})
	return nil
}

func (s *Store) addWedding(row []string) error {
	if len(row) < 6 {
		return core.ErrMissingColumns
	}
	s.Weddings = append(s.Weddings, core.Wedding{
		ID:      row[0],
		Spouse1: row[1],
		Spouse2: row[2],
		Date:    row[3],
		Time:    row[4],
		Venue:   row[5],
	})
	return nil
}

func (s *Store) addParty(row []string) error {
	if len(row) < 8 {
		return core.ErrMissingColumns
	}
	start, err := core.ParseDateMonth(row[3])
	if err != nil {
		return err
	}
	amount, err := core.ParseAmount(row[5])
	if err != nil {
		return err
	}
	parcels, err := parseInt(row[6])
	if err != nil {
		return err
	}
	party := core.Party{
		ID:        row[0],
		WeddingID: row[1],
		Venue:     row[2],
		Start:     start,
		Time:      row[4],
		Amount:    amount,
		Parcels:   parcels,
		Guests:    strings.Split(row[7], ","),
	}
	if err := party.Validate(); err != nil {
		return err
	}
	s.Parties = append(s.Parties, party)
	return nil
}

func (s *Store) addTask(row []string) error {
	if len(row) < 7 {
		return core.ErrMissingColumns
	}
	start, err := core.ParseDateMonth(row[3])
	if err != nil {
		return err
	}
	deadline, err := parseInt(row[4])
	if err != nil {
		return err
	}
	value, err := core.ParseAmount(row[5])
	if err != nil {
		return err
	}
	parcels, err := parseInt(row[6])
	if err != nil {
		return err
	}
	task := core.Task{
		ID:           row[0],
		HouseholdID:  row[1],
		ProviderID:   row[2],
		Start:        start,
		DeadlineDays: deadline,
		Value:        value,
		Parcels:      parcels,
	}
	if err := task.Validate(); err != nil {
		return err
	}
	s.Tasks = append(s.Tasks, task)
	return nil
}

func (s *Store) addPurchase(row []string) error {
	if len(row) < 7 {
		return core.ErrMissingColumns
	}
	quantity, err := parseInt(row[4])
	if err != nil {
		return err
	}
	unitPrice, err := core.ParseAmount(row[5])
	if err != nil {
		return err
	}
	parcels, err := parseInt(row[6])
	if err != nil {
		return err
	}
	purchase := core.Purchase{
		ID:        row[0],
		TaskID:    row[1],
		StoreID:   row[2],
		Product:   row[3],
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Parcels:   parcels,
	}
	if err := purchase.Validate(); err != nil {
		return err
	}
	s.Purchases = append(s.Purchases, purchase)
	return nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
