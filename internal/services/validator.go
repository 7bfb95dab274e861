// Package services holds the program's logic: referential-integrity
// validation, per-couple expense aggregation, the savings simulation, the
// report statistics, and the orchestration that ties them to the reports.
package services

import (
	"fmt"

	"planejador/internal/core"
	applog "planejador/internal/log"
	"planejador/internal/storage"
)

// Violation is the structured failure returned by the validator. The run
// aborts on the first one found.
type Violation struct {
	Check  string
	Entity string
	ID     string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", v.Check, v.Entity, v.ID, v.Detail)
}

// Validator runs the fixed sequence of cross-reference and uniqueness checks
// over a loaded store. Checks run in a fixed order and stop at the first
// violation; later checks are never reached once one fails.
type Validator struct {
	store  *storage.Store
	logger *applog.Logger
}

func NewValidator(store *storage.Store, logger *applog.Logger) *Validator {
	return &Validator{
		store:  store,
		logger: logger.WithComponent(applog.ComponentValidator),
	}
}

// Run executes all checks and returns the first violation found, or nil.
func (v *Validator) Run() error {
	checks := []func() *Violation{
		v.checkDuplicateIDs,
		v.checkDuplicateCPFs,
		v.checkRegistrationNumbers,
		v.checkHouseholdOwners,
		v.checkWeddingSpouses,
		v.checkTaskHouseholds,
		v.checkTaskProviders,
		v.checkPartyWeddings,
		v.checkPurchaseTasks,
		v.checkPurchaseStores,
	}
	for _, check := range checks {
		if violation := check(); violation != nil {
			v.logger.Error("integrity check failed",
				applog.FieldCheck, violation.Check,
				applog.FieldEntity, violation.Entity,
				applog.FieldID, violation.ID,
				applog.FieldError, violation.Detail)
			return violation
		}
	}
	v.logger.Debug("all integrity checks passed")
	return nil
}

func firstDuplicateID(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}

func (v *Validator) checkDuplicateIDs() *Violation {
	kinds := []struct {
		entity string
		ids    []string
	}{
		{"Pessoa", personIDs(v.store.People)},
		{"Lar", householdIDs(v.store.Households)},
		{"Tarefa", taskIDs(v.store.Tasks)},
		{"Casamento", weddingIDs(v.store.Weddings)},
		{"Festa", partyIDs(v.store.Parties)},
		{"Compra", purchaseIDs(v.store.Purchases)},
	}
	for _, kind := range kinds {
		if id, dup := firstDuplicateID(kind.ids); dup {
			return &Violation{Check: "duplicate-id", Entity: kind.entity, ID: id, Detail: "id registered more than once"}
		}
	}
	return nil
}

func (v *Validator) checkDuplicateCPFs() *Violation {
	seen := map[string]string{}
	for _, p := range v.store.People {
		if !p.IsIndividual() {
			continue
		}
		cpf := p.Individual.CPF
		if otherID, ok := seen[cpf]; ok {
			return &Violation{
				Check:  "duplicate-cpf",
				Entity: "Pessoa",
				ID:     p.ID,
				Detail: fmt.Sprintf("CPF %s already registered by person %s", cpf, otherID),
			}
		}
		seen[cpf] = p.ID
	}
	return nil
}

// checkRegistrationNumbers enforces CNPJ uniqueness between organizations
// only. Collisions involving a store are logged, not fatal.
func (v *Validator) checkRegistrationNumbers() *Violation {
	seen := map[string]*core.Person{}
	for i := range v.store.People {
		p := &v.store.People[i]
		if p.IsIndividual() {
			continue
		}
		cnpj := p.Registration
		other, ok := seen[cnpj]
		if !ok {
			seen[cnpj] = p
			continue
		}
		if p.IsOrganization() && other.IsOrganization() {
			return &Violation{
				Check:  "duplicate-cnpj",
				Entity: "Pessoa",
				ID:     p.ID,
				Detail: fmt.Sprintf("CNPJ %s already registered by person %s", cnpj, other.ID),
			}
		}
		v.logger.Warn("registration number shared with a store; not fatal",
			applog.FieldCNPJ, cnpj,
			applog.FieldID, p.ID,
			"other_id", other.ID)
	}
	return nil
}

func (v *Validator) checkHouseholdOwners() *Violation {
	for _, h := range v.store.Households {
		for _, owner := range []string{h.Owner1, h.Owner2} {
			if _, ok := v.store.PersonByID(owner); !ok {
				return &Violation{
					Check:  "household-owner",
					Entity: "Lar",
					ID:     h.ID,
					Detail: fmt.Sprintf("owner %s is not a registered person", owner),
				}
			}
		}
	}
	return nil
}

func (v *Validator) checkWeddingSpouses() *Violation {
	for _, w := range v.store.Weddings {
		for _, spouse := range []string{w.Spouse1, w.Spouse2} {
			if _, ok := v.store.PersonByID(spouse); !ok {
				return &Violation{
					Check:  "wedding-spouse",
					Entity: "Casamento",
					ID:     w.ID,
					Detail: fmt.Sprintf("spouse %s is not a registered person", spouse),
				}
			}
		}
	}
	return nil
}

func (v *Validator) checkTaskHouseholds() *Violation {
	for _, t := range v.store.Tasks {
		if _, ok := v.store.HouseholdByID(t.HouseholdID); !ok {
			return &Violation{
				Check:  "task-household",
				Entity: "Tarefa",
				ID:     t.ID,
				Detail: fmt.Sprintf("household %s is not registered", t.HouseholdID),
			}
		}
	}
	return nil
}

func (v *Validator) checkTaskProviders() *Violation {
	for _, t := range v.store.Tasks {
		if _, ok := v.store.PersonByID(t.ProviderID); !ok {
			return &Violation{
				Check:  "task-provider",
				Entity: "Tarefa",
				ID:     t.ID,
				Detail: fmt.Sprintf("provider %s is not a registered person", t.ProviderID),
			}
		}
	}
	return nil
}

func (v *Validator) checkPartyWeddings() *Violation {
	for _, p := range v.store.Parties {
		if _, ok := v.store.WeddingByID(p.WeddingID); !ok {
			return &Violation{
				Check:  "party-wedding",
				Entity: "Festa",
				ID:     p.ID,
				Detail: fmt.Sprintf("wedding %s is not registered", p.WeddingID),
			}
		}
	}
	return nil
}

func (v *Validator) checkPurchaseTasks() *Violation {
	for _, p := range v.store.Purchases {
		if _, ok := v.store.TaskByID(p.TaskID); !ok {
			return &Violation{
				Check:  "purchase-task",
				Entity: "Compra",
				ID:     p.ID,
				Detail: fmt.Sprintf("task %s is not registered", p.TaskID),
			}
		}
	}
	return nil
}

// checkPurchaseStores requires the seller to exist, and rejects purchases
// whose seller resolves to an organization that is not a store.
func (v *Validator) checkPurchaseStores() *Violation {
	for _, p := range v.store.Purchases {
		seller, ok := v.store.PersonByID(p.StoreID)
		if !ok {
			return &Violation{
				Check:  "purchase-store",
				Entity: "Compra",
				ID:     p.ID,
				Detail: fmt.Sprintf("store %s is not registered", p.StoreID),
			}
		}
		if seller.IsOrganization() {
			return &Violation{
				Check:  "purchase-store-kind",
				Entity: "Compra",
				ID:     p.ID,
				Detail: fmt.Sprintf("person %s is an organization, not a store", p.StoreID),
			}
		}
	}
	return nil
}

func personIDs(people []core.Person) []string {
	ids := make([]string, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}

func householdIDs(hs []core.Household) []string {
	ids := make([]string, len(hs))
	for i, h := range hs {
		ids[i] = h.ID
	}
	return ids
}

func taskIDs(ts []core.Task) []string {
	ids := make([]string, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

func weddingIDs(ws []core.Wedding) []string {
	ids := make([]string, len(ws))
	for i, w := range ws {
		ids[i] = w.ID
	}
	return ids
}

func partyIDs(ps []core.Party) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func purchaseIDs(ps []core.Purchase) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}
