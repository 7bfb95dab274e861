package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"planejador/internal/core"
	"planejador/internal/storage"
)

// noWeddingID is compared against party wedding ids when a couple has no
// registered wedding. A real wedding with this id is therefore excluded from
// that couple's shared-party count; the value is kept for report
// compatibility.
const noWeddingID = "1"

// ProviderStatistics computes the amount received by every person and ranks
// the entries. Individuals receive task values and appear only when the sum
// is strictly positive; organizations receive task values and always appear;
// stores receive purchase totals and always appear. Order: category priority
// (PF, PJ, Loja), then amount descending, then name ascending.
func ProviderStatistics(store *storage.Store) []core.ProviderStat {
	type ranked struct {
		person *core.Person
		total  decimal.Decimal
	}
	var entries []ranked

	for i := range store.People {
		p := &store.People[i]
		total := decimal.Zero
		if p.IsStore() {
			for _, purchase := range store.Purchases {
				if purchase.StoreID == p.ID {
					total = total.Add(purchase.UnitPrice.Mul(decimal.NewFromInt(int64(purchase.Quantity))))
				}
			}
		} else {
			for _, task := range store.Tasks {
				if task.ProviderID == p.ID {
					total = total.Add(task.Value)
				}
			}
			if p.IsIndividual() && !total.IsPositive() {
				continue
			}
		}
		entries = append(entries, ranked{person: p, total: total})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if pa, pb := a.person.CategoryPriority(), b.person.CategoryPriority(); pa != pb {
			return pa < pb
		}
		if cmp := a.total.Cmp(b.total); cmp != 0 {
			return cmp > 0
		}
		return a.person.Name < b.person.Name
	})

	stats := make([]core.ProviderStat, len(entries))
	for i, e := range entries {
		stats[i] = core.ProviderStat{
			Category: e.person.Category(),
			Name:     e.person.Name,
			Total:    e.total,
		}
	}
	return stats
}

// SharedPartyCount counts the parties where both spouses appear in the guest
// list and that celebrate someone else's wedding.
func SharedPartyCount(store *storage.Store, id1, id2, name1, name2 string) int {
	weddingID := noWeddingID
	if wedding, ok := store.WeddingOf(id1, id2); ok {
		weddingID = wedding.ID
	}

	count := 0
	for _, party := range store.Parties {
		if party.WeddingID == weddingID {
			continue
		}
		if party.HasGuest(name1) && party.HasGuest(name2) {
			count++
		}
	}
	return count
}

// SortCoupleStats orders the couple report rows by total spend descending,
// then by first name ascending.
func SortCoupleStats(stats []core.CoupleStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if cmp := stats[i].Total.Cmp(stats[j].Total); cmp != 0 {
			return cmp > 0
		}
		return stats[i].Couple.Name1 < stats[j].Couple.Name1
	})
}
