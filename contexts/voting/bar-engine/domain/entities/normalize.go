package entities

import (
	"math"
	"sort"

	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
)

// Tolerance constants are part of the normalization contract. Independent
// clients must agree on boundary behavior, so they are fixed here rather
// than configurable.
const (
	// OverlapEpsilon permits intervals whose endpoints touch exactly,
	// absorbing float noise from drag coordinates.
	OverlapEpsilon = 1e-9

	// SumTolerance is the slack over 100.0 a ballot total may carry before
	// it is rejected as over-allocated. 100.0 and 100.0+1e-6 are accepted;
	// 100.01 is not.
	SumTolerance = 1e-6

	// RoundPrecision is the number of decimal digits kept in normalized
	// allocations, keeping aggregate arithmetic deterministic.
	RoundPrecision = 6
)

// NormalizeBallot validates a candidate ballot against a room's option set
// and converts it to the canonical per-option allocation. Checks run in a
// fixed order and the first failure wins:
//
//  1. every referenced option is a room option
//  2. every raw value lies in [0, 100]
//  3. interval start <= end (position form)
//  4. intervals are pairwise disjoint, touching allowed (position form)
//  5. total allocation <= 100 + SumTolerance
//
// The point form computes its allocation instead of reading it: each placed
// option claims the bar segment reaching to the midpoints with its nearest
// placed neighbors, so the shares always total 100. Only checks 1 and 2
// apply to it.
//
// The function is pure: it never mutates its inputs and has no side effects.
func NormalizeBallot(ballot Ballot, roomOptions []string) (Allocation, error) {
	known := make(map[string]struct{}, len(roomOptions))
	for _, option := range roomOptions {
		known[option] = struct{}{}
	}

	switch ballot.Kind {
	case BallotKindPositions:
		return normalizePositions(ballot.Intervals, roomOptions, known)
	case BallotKindPercentages:
		return normalizePercentages(ballot.Percentages, roomOptions, known)
	case BallotKindPoints:
		return normalizePoints(ballot.Points, roomOptions, known)
	default:
		return nil, domainerrors.ErrInvalidBallot
	}
}

func normalizePositions(
	intervals map[string]Interval,
	roomOptions []string,
	known map[string]struct{},
) (Allocation, error) {
	for option := range intervals {
		if _, ok := known[option]; !ok {
			return nil, domainerrors.ErrUnknownOption
		}
	}
	for _, interval := range intervals {
		if interval.Start < 0 || interval.Start > 100 || interval.End < 0 || interval.End > 100 {
			return nil, domainerrors.ErrOutOfRange
		}
	}
	for _, interval := range intervals {
		if interval.Start > interval.End {
			return nil, domainerrors.ErrInvalidInterval
		}
	}

	// Sorted sweep: after ordering by start, each interval must begin at or
	// after the previous one ends.
	sorted := make([]Interval, 0, len(intervals))
	for _, interval := range intervals {
		sorted = append(sorted, interval)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End-OverlapEpsilon {
			return nil, domainerrors.ErrOverlap
		}
	}

	total := 0.0
	for _, interval := range intervals {
		total += interval.Width()
	}
	if total > 100+SumTolerance {
		return nil, domainerrors.ErrOverAllocation
	}

	allocation := make(Allocation, len(roomOptions))
	for _, option := range roomOptions {
		share := 0.0
		if interval, ok := intervals[option]; ok {
			share = interval.Width()
		}
		allocation[option] = roundShare(share)
	}
	return allocation, nil
}

func normalizePercentages(
	percentages map[string]float64,
	roomOptions []string,
	known map[string]struct{},
) (Allocation, error) {
	for option := range percentages {
		if _, ok := known[option]; !ok {
			return nil, domainerrors.ErrUnknownOption
		}
	}

	total := 0.0
	for _, value := range percentages {
		if value < 0 || value > 100 {
			return nil, domainerrors.ErrOutOfRange
		}
		total += value
	}
	if total > 100+SumTolerance {
		return nil, domainerrors.ErrOverAllocation
	}

	allocation := make(Allocation, len(roomOptions))
	for _, option := range roomOptions {
		allocation[option] = roundShare(percentages[option])
	}
	return allocation, nil
}

// normalizePoints turns one marker position per option into shares by 1D
// Voronoi partition: sorted by position, each marker owns the bar from the
// midpoint with its left neighbor to the midpoint with its right neighbor,
// the outermost markers extending to the bar edges. A single marker owns
// the whole bar. Equal positions are ordered by option name so the split
// is deterministic.
func normalizePoints(
	points map[string]float64,
	roomOptions []string,
	known map[string]struct{},
) (Allocation, error) {
	for option := range points {
		if _, ok := known[option]; !ok {
			return nil, domainerrors.ErrUnknownOption
		}
	}
	for _, position := range points {
		if position < 0 || position > 100 {
			return nil, domainerrors.ErrOutOfRange
		}
	}

	type marker struct {
		option   string
		position float64
	}
	sorted := make([]marker, 0, len(points))
	for option, position := range points {
		sorted = append(sorted, marker{option: option, position: position})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].position == sorted[j].position {
			return sorted[i].option < sorted[j].option
		}
		return sorted[i].position < sorted[j].position
	})

	shares := make(map[string]float64, len(sorted))
	for i, m := range sorted {
		left := 0.0
		if i > 0 {
			left = (sorted[i-1].position + m.position) / 2
		}
		right := 100.0
		if i < len(sorted)-1 {
			right = (m.position + sorted[i+1].position) / 2
		}
		shares[m.option] = right - left
	}

	allocation := make(Allocation, len(roomOptions))
	for _, option := range roomOptions {
		allocation[option] = roundShare(shares[option])
	}
	return allocation, nil
}

func roundShare(value float64) float64 {
	scale := math.Pow10(RoundPrecision)
	return math.Round(value*scale) / scale
}
