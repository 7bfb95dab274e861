package core

// Couple is the canonical unordered pair of two names. The lexicographically
// smaller name always comes first, so the same pair built in either order
// yields an identical key for couple-keyed aggregates.
type Couple struct {
	Name1 string
	Name2 string
}

func NewCouple(name1, name2 string) Couple {
	if name2 < name1 {
		name1, name2 = name2, name1
	}
	return Couple{Name1: name1, Name2: name2}
}
