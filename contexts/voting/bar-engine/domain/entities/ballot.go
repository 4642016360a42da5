package entities

import "time"

type BallotKind string

const (
	BallotKindPositions   BallotKind = "positions"
	BallotKindPercentages BallotKind = "percentages"
	BallotKindPoints      BallotKind = "points"
)

// Interval is a contiguous segment of the 100% bar. Width is the share of
// the bar the segment claims.
type Interval struct {
	Start float64
	End   float64
}

func (i Interval) Width() float64 {
	return i.End - i.Start
}

// Ballot is one participant's raw submission in one of the three accepted
// forms. Exactly one payload map is consulted, selected by Kind. For the
// interval and percentage forms, options absent from the payload are
// implicitly allocated 0%. The point form places one marker per option on
// the bar; each placed option claims the territory up to the midpoints
// with its neighbors, so placed options always divide the full 100%.
type Ballot struct {
	Kind        BallotKind
	Intervals   map[string]Interval
	Percentages map[string]float64
	Points      map[string]float64
}

// Allocation is the canonical per-option percentage mapping derived from a
// ballot. Every room option is present; values are rounded to RoundPrecision
// decimal digits.
type Allocation map[string]float64

// NormalizedBallot is an accepted vote. Once appended to a room it is an
// immutable value copy.
type NormalizedBallot struct {
	VoteID      string
	VoterID     string
	Allocations Allocation
	SubmittedAt time.Time
}

func (b NormalizedBallot) Clone() NormalizedBallot {
	out := b
	out.Allocations = make(Allocation, len(b.Allocations))
	for option, share := range b.Allocations {
		out.Allocations[option] = share
	}
	return out
}
