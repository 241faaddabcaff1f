package domain

// Winner identifies the outcome of a single-winner tally.
// A non-negative value is the 0-based index of the winning candidate.
type Winner int

// NoWinner is the defined non-winner sentinel. It is returned when a
// Condorcet cycle leaves no winner, or when an exact tie remains unbroken
// under TieNone. Callers must check Valid before using a Winner as an index.
const NoWinner Winner = -1

// Valid reports whether w names an actual candidate.
func (w Winner) Valid() bool { return w >= 0 }

// Index returns the candidate index. It panics if w is NoWinner; callers
// are expected to have checked Valid first.
func (w Winner) Index() int {
	if !w.Valid() {
		panic("domain: Index called on NoWinner")
	}
	return int(w)
}
