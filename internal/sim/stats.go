package sim

// MethodStats accumulates per-method counters and running sums across
// trials. Everything is commutative, so partial accumulators from
// disjoint trial ranges merge into the same totals in any order.
type MethodStats struct {
	// Trials is the number of trials tallied for this method.
	Trials int

	// CondorcetTrials counts trials in which a Condorcet winner existed.
	CondorcetTrials int

	// CondorcetMatches counts trials in which this method elected the
	// Condorcet winner.
	CondorcetMatches int

	// Unresolved counts trials whose tie was left unresolved under the
	// none policy. Unresolved trials carry no utility sums.
	Unresolved int

	// WinnerUtility sums the electorate's total utility for this
	// method's winner across resolved trials.
	WinnerUtility float64

	// MaxUtility sums the best achievable total utility across the same
	// resolved trials.
	MaxUtility float64

	// RandomUtility sums the expected total utility of a uniformly
	// random winner across the same resolved trials, the baseline that
	// anchors SUE at zero.
	RandomUtility float64
}

func (m MethodStats) merge(o MethodStats) MethodStats {
	return MethodStats{
		Trials:           m.Trials + o.Trials,
		CondorcetTrials:  m.CondorcetTrials + o.CondorcetTrials,
		CondorcetMatches: m.CondorcetMatches + o.CondorcetMatches,
		Unresolved:       m.Unresolved + o.Unresolved,
		WinnerUtility:    m.WinnerUtility + o.WinnerUtility,
		MaxUtility:       m.MaxUtility + o.MaxUtility,
		RandomUtility:    m.RandomUtility + o.RandomUtility,
	}
}

// CondorcetEfficiency reports the fraction of Condorcet-winner trials in
// which the method elected that winner. The second return is false when
// no trial had a Condorcet winner.
func (m MethodStats) CondorcetEfficiency() (float64, bool) {
	if m.CondorcetTrials == 0 {
		return 0, false
	}
	return float64(m.CondorcetMatches) / float64(m.CondorcetTrials), true
}

// SUE reports social utility efficiency: how far above a random winner
// the method lands on total utility, scaled so the utility-maximizing
// winner is 1 and a random winner is 0. The second return is false when
// the denominator degenerates (no resolved trials, or every trial had
// indistinguishable candidates).
func (m MethodStats) SUE() (float64, bool) {
	denom := m.MaxUtility - m.RandomUtility
	if denom == 0 {
		return 0, false
	}
	return (m.WinnerUtility - m.RandomUtility) / denom, true
}

// Stats accumulates one study's counters: electorate-level facts shared
// by all methods plus the per-method accumulators.
type Stats struct {
	// Trials is the number of simulated elections.
	Trials int

	// CondorcetWinners counts trials in which a Condorcet winner
	// existed.
	CondorcetWinners int

	// Cycles counts trials without a Condorcet winner, whether from a
	// strict cycle or from a pairwise tie.
	Cycles int

	// Methods holds the per-method accumulators, keyed by registry name.
	Methods map[string]MethodStats
}

// NewStats returns an empty accumulator covering the given methods.
func NewStats(methods []string) Stats {
	s := Stats{Methods: make(map[string]MethodStats, len(methods))}
	for _, name := range methods {
		s.Methods[name] = MethodStats{}
	}
	return s
}

// Merge combines two partial accumulators. Merge is commutative and
// associative, which is what lets simrunner fan trials out across workers
// and combine partials in completion order.
func (s Stats) Merge(o Stats) Stats {
	out := Stats{
		Trials:           s.Trials + o.Trials,
		CondorcetWinners: s.CondorcetWinners + o.CondorcetWinners,
		Cycles:           s.Cycles + o.Cycles,
		Methods:          make(map[string]MethodStats, len(s.Methods)+len(o.Methods)),
	}
	for name, m := range s.Methods {
		out.Methods[name] = m
	}
	for name, m := range o.Methods {
		out.Methods[name] = out.Methods[name].merge(m)
	}
	return out
}

// CycleRate reports the fraction of trials without a Condorcet winner.
func (s Stats) CycleRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Trials)
}
