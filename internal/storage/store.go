// Package storage loads the flat-file data set into an in-memory record
// store. The store is read-only after loading; every collection keeps input
// order because report construction and validation depend on it.
package storage

import "planejador/internal/core"

type Store struct {
	People     []core.Person
	Households []core.Household
	Tasks      []core.Task
	Weddings   []core.Wedding
	Parties    []core.Party
	Purchases  []core.Purchase
}

// PersonByID returns the person with the given id, if any.
func (s *Store) PersonByID(id string) (*core.Person, bool) {
	for i := range s.People {
		if s.People[i].ID == id {
			return &s.People[i], true
		}
	}
	return nil, false
}

// IndividualByCPF returns the individual holding the given national id.
func (s *Store) IndividualByCPF(cpf string) (*core.Person, bool) {
	for i := range s.People {
		p := &s.People[i]
		if p.IsIndividual() && p.Individual.CPF == cpf {
			return p, true
		}
	}
	return nil, false
}

func (s *Store) HouseholdByID(id string) (*core.Household, bool) {
	for i := range s.Households {
		if s.Households[i].ID == id {
			return &s.Households[i], true
		}
	}
	return nil, false
}

func (s *Store) TaskByID(id string) (*core.Task, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}

func (s *Store) WeddingByID(id string) (*core.Wedding, bool) {
	for i := range s.Weddings {
		if s.Weddings[i].ID == id {
			return &s.Weddings[i], true
		}
	}
	return nil, false
}

// WeddingOf returns the wedding joining the two persons, in either spouse
// order.
func (s *Store) WeddingOf(id1, id2 string) (*core.Wedding, bool) {
	for i := range s.Weddings {
		if s.Weddings[i].Between(id1, id2) {
			return &s.Weddings[i], true
		}
	}
	return nil, false
}
