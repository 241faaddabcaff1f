package tally

import (
	"fmt"
	"sort"

	"github.com/voteforge/voteforge/internal/domain"
)

// BallotFormat tags the closed set of ballot representations a method
// can declare. Dispatch over formats is checked at the method boundary
// rather than assumed from array shape.
type BallotFormat string

// The supported ballot formats.
const (
	FormatRanked   BallotFormat = "ranked"
	FormatApproval BallotFormat = "approval"
	FormatScore    BallotFormat = "score"
)

// Ballots is the tagged union handed to registry methods. Exactly one of
// the representations is populated, per the format tag.
type Ballots struct {
	format   BallotFormat
	ranked   domain.RankedBallots
	approval domain.ApprovalBallots
	score    domain.ScoreBallots
}

// RankedSet wraps ranked ballots for registry dispatch.
func RankedSet(e domain.RankedBallots) Ballots {
	return Ballots{format: FormatRanked, ranked: e}
}

// ApprovalSet wraps approval ballots for registry dispatch.
func ApprovalSet(e domain.ApprovalBallots) Ballots {
	return Ballots{format: FormatApproval, approval: e}
}

// ScoreSet wraps score ballots for registry dispatch.
func ScoreSet(e domain.ScoreBallots) Ballots {
	return Ballots{format: FormatScore, score: e}
}

// Format returns the representation tag.
func (b Ballots) Format() BallotFormat { return b.format }

// Method describes a registered single-winner tally rule: its name, the
// one ballot format it accepts, and the tally function itself.
type Method struct {
	// Name is the registry key, e.g. "irv".
	Name string

	// Format is the single ballot representation the method accepts.
	Format BallotFormat

	tally func(Ballots, domain.TieBreaker) (domain.Winner, error)
}

// Tally runs the method over a ballot set, rejecting mismatched formats
// at the boundary.
func (m Method) Tally(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
	if b.format != m.Format {
		return domain.NoWinner, fmt.Errorf("%w: method %s takes %s ballots, got %s",
			ErrFormatMismatch, m.Name, m.Format, b.format)
	}
	return m.tally(b, tb)
}

// methods is the closed registry of public single-winner rules.
// UtilityWinner stays out: it reads raw utilities no real ballot
// carries and serves only as the efficiency baseline.
var methods = map[string]Method{
	"fptp": {
		Name:   "fptp",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return FPTP(b.ranked, tb)
		},
	},
	"borda": {
		Name:   "borda",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Borda(b.ranked, tb)
		},
	},
	"runoff": {
		Name:   "runoff",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Runoff(b.ranked, tb)
		},
	},
	"irv": {
		Name:   "irv",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return IRV(b.ranked, tb)
		},
	},
	"coombs": {
		Name:   "coombs",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Coombs(b.ranked, tb)
		},
	},
	"condorcet": {
		Name:   "condorcet",
		Format: FormatRanked,
		tally: func(b Ballots, _ domain.TieBreaker) (domain.Winner, error) {
			return Condorcet(b.ranked)
		},
	},
	"black": {
		Name:   "black",
		Format: FormatRanked,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Black(b.ranked, tb)
		},
	},
	"approval": {
		Name:   "approval",
		Format: FormatApproval,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Approval(b.approval, tb)
		},
	},
	"score": {
		Name:   "score",
		Format: FormatScore,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return Score(b.score, tb)
		},
	},
	"star": {
		Name:   "star",
		Format: FormatScore,
		tally: func(b Ballots, tb domain.TieBreaker) (domain.Winner, error) {
			return STAR(b.score, tb)
		},
	},
}

// Lookup returns the registered method for name.
func Lookup(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}

// Names returns the registered method names in sorted order.
func Names() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
