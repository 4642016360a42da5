package entities

import "fmt"

// Tally is the running aggregate a room maintains while votes arrive. Fold
// is cheap so results never require replaying the vote sequence; a rebuild
// from history exists for explicit replay only.
type Tally struct {
	Sums      map[string]float64
	ZeroVotes map[string]int
	VoteCount int
}

func NewTally(options []string) Tally {
	sums := make(map[string]float64, len(options))
	zeros := make(map[string]int, len(options))
	for _, option := range options {
		sums[option] = 0
		zeros[option] = 0
	}
	return Tally{Sums: sums, ZeroVotes: zeros}
}

// Fold adds one accepted allocation to the running aggregate as a single
// unit. The allocation must have been produced by NormalizeBallot against
// this tally's option set; a key outside it means validation was bypassed,
// which is a programming defect, not a runtime condition.
func (t *Tally) Fold(allocation Allocation) {
	for option, share := range allocation {
		if _, ok := t.Sums[option]; !ok {
			panic(fmt.Sprintf("tally fold: allocation carries unknown option %q", option))
		}
		t.Sums[option] += share
		if share == 0 {
			t.ZeroVotes[option]++
		}
	}
	t.VoteCount++
}

// RebuildTally recomputes the aggregate from replayed vote history. The
// result is identical to folding the same votes in any order.
func RebuildTally(options []string, votes []NormalizedBallot) Tally {
	tally := NewTally(options)
	for _, vote := range votes {
		tally.Fold(vote.Allocations)
	}
	return tally
}

// OptionResult is one option's summary across every accepted vote. Every
// vote counts toward the denominator, including ones allocating exactly 0%.
type OptionResult struct {
	Option    string
	Mean      float64
	VoteCount int
	ZeroVotes int
}

// AggregateResult is derived on demand from a room's tally and is never
// stored independently.
type AggregateResult struct {
	RoomID    string
	VoteCount int
	Options   []OptionResult
}

// Result derives per-option means in the room's option order. An empty room
// yields zero means and zero counts; that is a defined boundary, not an
// error.
func (t Tally) Result(roomID string, options []string) AggregateResult {
	results := make([]OptionResult, 0, len(options))
	for _, option := range options {
		mean := 0.0
		if t.VoteCount > 0 {
			mean = t.Sums[option] / float64(t.VoteCount)
		}
		results = append(results, OptionResult{
			Option:    option,
			Mean:      mean,
			VoteCount: t.VoteCount,
			ZeroVotes: t.ZeroVotes[option],
		})
	}
	return AggregateResult{RoomID: roomID, VoteCount: t.VoteCount, Options: results}
}

func (t Tally) Clone() Tally {
	out := Tally{
		Sums:      make(map[string]float64, len(t.Sums)),
		ZeroVotes: make(map[string]int, len(t.ZeroVotes)),
		VoteCount: t.VoteCount,
	}
	for option, sum := range t.Sums {
		out.Sums[option] = sum
	}
	for option, count := range t.ZeroVotes {
		out.ZeroVotes[option] = count
	}
	return out
}
