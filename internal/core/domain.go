// Package core holds the entity records loaded from the input files and the
// derived values (couples, amortized expenses, report rows) computed from
// them. Records are immutable after loading.
package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	KindIndividual   PersonKind = "F"
	KindOrganization PersonKind = "J"
	KindStore        PersonKind = "L"
)

type (
	PersonKind string

	// Person is a tagged union over the three concrete kinds. Individual is
	// set only for KindIndividual; Registration only for organizations and
	// stores.
	Person struct {
		ID      string
		Kind    PersonKind
		Name    string
		Phone   string
		Address string

		Individual   *Individual
		Registration string
	}

	// Individual carries the kind-specific payload of a natural person.
	Individual struct {
		CPF             string
		BirthDate       string
		Savings         decimal.Decimal
		Salary          decimal.Decimal
		MonthlyExpenses decimal.Decimal
	}

	Household struct {
		ID         string
		Owner1     string
		Owner2     string
		Street     string
		Number     int
		Complement string
	}

	Wedding struct {
		ID      string
		Spouse1 string
		Spouse2 string
		Date    string
		Time    string
		Venue   string
	}

	// Task is a service contract tied to a household, paid to a provider in
	// installments.
	Task struct {
		ID           string
		HouseholdID  string
		ProviderID   string
		Start        YearMonth
		DeadlineDays int
		Value        decimal.Decimal
		Parcels      int
	}

	Party struct {
		ID        string
		WeddingID string
		Venue     string
		Start     YearMonth
		Time      string
		Amount    decimal.Decimal
		Parcels   int
		Guests    []string
	}

	Purchase struct {
		ID        string
		TaskID    string
		StoreID   string
		Product   string
		Quantity  int
		UnitPrice decimal.Decimal
		Parcels   int
	}

	// ProviderStat is one row of the provider statistics report.
	ProviderStat struct {
		Category string
		Name     string
		Total    decimal.Decimal
	}

	// CoupleStat is one row of the couple statistics report.
	CoupleStat struct {
		Couple        Couple
		Total         decimal.Decimal
		SharedParties int
	}
)

// Provider report category labels, in ranking priority order.
const (
	CategoryIndividual   = "PF"
	CategoryOrganization = "PJ"
	CategoryStore        = "Loja"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidParcels = errors.New("installment count must be at least 1")
	ErrMissingColumns = errors.New("missing columns")
)

func (p Person) IsIndividual() bool   { return p.Kind == KindIndividual }
func (p Person) IsOrganization() bool { return p.Kind == KindOrganization }
func (p Person) IsStore() bool        { return p.Kind == KindStore }

// Category returns the provider report label for the person's kind.
func (p Person) Category() string {
	switch {
	case p.IsIndividual():
		return CategoryIndividual
	case p.IsStore():
		return CategoryStore
	default:
		return CategoryOrganization
	}
}

// CategoryPriority orders provider report entries: individuals first,
// organizations second, stores last.
func (p Person) CategoryPriority() int {
	switch {
	case p.IsIndividual():
		return 1
	case p.IsStore():
		return 3
	default:
		return 2
	}
}

// OwnedBy reports whether the household belongs to the given pair of owners,
// in either order.
func (h Household) OwnedBy(id1, id2 string) bool {
	return (h.Owner1 == id1 && h.Owner2 == id2) || (h.Owner1 == id2 && h.Owner2 == id1)
}

// Between reports whether the wedding joins the given pair of spouses, in
// either order.
func (w Wedding) Between(id1, id2 string) bool {
	return (w.Spouse1 == id1 && w.Spouse2 == id2) || (w.Spouse1 == id2 && w.Spouse2 == id1)
}

// HasGuest reports whether the name appears in the party's guest list.
func (p Party) HasGuest(name string) bool {
	for _, g := range p.Guests {
		if g == name {
			return true
		}
	}
	return false
}

func (t Task) Validate() error {
	if t.Parcels < 1 {
		return ErrInvalidParcels
	}
	return nil
}

func (p Party) Validate() error {
	if p.Parcels < 1 {
		return ErrInvalidParcels
	}
	return nil
}

func (p Purchase) Validate() error {
	if p.Parcels < 1 {
		return ErrInvalidParcels
	}
	return nil
}
