package entities

import (
	"errors"
	"math"
	"testing"

	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
)

var roomOptions = []string{"A", "B", "C"}

func TestNormalizePositionBallot(t *testing.T) {
	allocation, err := NormalizeBallot(Ballot{
		Kind: BallotKindPositions,
		Intervals: map[string]Interval{
			"A": {Start: 0, End: 50},
			"B": {Start: 60, End: 100},
		},
	}, roomOptions)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if allocation["A"] != 50 || allocation["B"] != 40 {
		t.Fatalf("unexpected shares: A=%f B=%f", allocation["A"], allocation["B"])
	}
	if allocation["C"] != 0 {
		t.Fatalf("absent option should default to 0, got %f", allocation["C"])
	}
	if len(allocation) != len(roomOptions) {
		t.Fatalf("allocation must carry every room option, got %d keys", len(allocation))
	}
}

func TestNormalizePercentageBallotPartialAllocation(t *testing.T) {
	allocation, err := NormalizeBallot(Ballot{
		Kind:        BallotKindPercentages,
		Percentages: map[string]float64{"A": 40, "C": 30},
	}, roomOptions)
	if err != nil {
		t.Fatalf("partial allocation should be accepted: %v", err)
	}
	if allocation["A"] != 40 || allocation["B"] != 0 || allocation["C"] != 30 {
		t.Fatalf("unexpected allocation: %v", allocation)
	}
}

func TestTouchingIntervalsAreNotOverlapping(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind: BallotKindPositions,
		Intervals: map[string]Interval{
			"A": {Start: 0, End: 50},
			"B": {Start: 50, End: 100},
		},
	}, roomOptions)
	if err != nil {
		t.Fatalf("touching endpoints must be accepted: %v", err)
	}
}

func TestOverlappingIntervalsRejected(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind: BallotKindPositions,
		Intervals: map[string]Interval{
			"A": {Start: 0, End: 51},
			"B": {Start: 50, End: 100},
		},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestNegativeStartRejectedAsOutOfRange(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind:      BallotKindPositions,
		Intervals: map[string]Interval{"A": {Start: -1, End: 10}},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestReversedIntervalRejected(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind:      BallotKindPositions,
		Intervals: map[string]Interval{"A": {Start: 60, End: 40}},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestUnknownOptionWinsOverLaterChecks(t *testing.T) {
	// The unknown-option check runs first even when the same ballot also
	// carries an out-of-range interval.
	_, err := NormalizeBallot(Ballot{
		Kind: BallotKindPositions,
		Intervals: map[string]Interval{
			"Z": {Start: 0, End: 10},
			"A": {Start: -5, End: 10},
		},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestTotalAllocationBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		total   map[string]float64
		wantErr error
	}{
		{"exactly 100", map[string]float64{"A": 60, "B": 40}, nil},
		{"100 plus tolerance", map[string]float64{"A": 60, "B": 40.000001}, nil},
		{"100.01", map[string]float64{"A": 60, "B": 40.01}, domainerrors.ErrOverAllocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeBallot(Ballot{
				Kind:        BallotKindPercentages,
				Percentages: tc.total,
			}, roomOptions)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("expected acceptance, got %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPercentageOver100Rejected(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind:        BallotKindPercentages,
		Percentages: map[string]float64{"A": 100.5},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestUnknownKindRejected(t *testing.T) {
	_, err := NormalizeBallot(Ballot{}, roomOptions)
	if !errors.Is(err, domainerrors.ErrInvalidBallot) {
		t.Fatalf("expected ErrInvalidBallot, got %v", err)
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	// Re-deriving intervals from a normalized allocation and validating
	// again must not fail: the shares pack back onto the bar left to right.
	allocation, err := NormalizeBallot(Ballot{
		Kind: BallotKindPositions,
		Intervals: map[string]Interval{
			"A": {Start: 10, End: 35.5},
			"B": {Start: 40, End: 72.25},
			"C": {Start: 80, End: 95},
		},
	}, roomOptions)
	if err != nil {
		t.Fatalf("first normalization failed: %v", err)
	}

	rederived := make(map[string]Interval, len(allocation))
	cursor := 0.0
	for _, option := range roomOptions {
		width := allocation[option]
		rederived[option] = Interval{Start: cursor, End: cursor + width}
		cursor += width
	}
	second, err := NormalizeBallot(Ballot{
		Kind:      BallotKindPositions,
		Intervals: rederived,
	}, roomOptions)
	if err != nil {
		t.Fatalf("re-validation of derived intervals failed: %v", err)
	}
	for _, option := range roomOptions {
		if math.Abs(second[option]-allocation[option]) > 1e-9 {
			t.Fatalf("idempotence broken for %s: %f vs %f", option, second[option], allocation[option])
		}
	}
}

func TestAllocationRounding(t *testing.T) {
	allocation, err := NormalizeBallot(Ballot{
		Kind:      BallotKindPositions,
		Intervals: map[string]Interval{"A": {Start: 0, End: 33.3333333333}},
	}, roomOptions)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if allocation["A"] != 33.333333 {
		t.Fatalf("expected 6-digit rounding, got %v", allocation["A"])
	}
}

func TestPointBallotMidpointShares(t *testing.T) {
	cases := []struct {
		name   string
		points map[string]float64
		want   map[string]float64
	}{
		{
			name:   "single marker owns the whole bar",
			points: map[string]float64{"A": 50},
			want:   map[string]float64{"A": 100, "B": 0, "C": 0},
		},
		{
			name:   "two markers split at their midpoint",
			points: map[string]float64{"A": 30, "B": 70},
			want:   map[string]float64{"A": 50, "B": 50, "C": 0},
		},
		{
			name:   "three markers claim midpoint territories",
			points: map[string]float64{"A": 20, "B": 50, "C": 80},
			want:   map[string]float64{"A": 35, "B": 30, "C": 35},
		},
		{
			name:   "off-center marker still owns everything",
			points: map[string]float64{"B": 10},
			want:   map[string]float64{"A": 0, "B": 100, "C": 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allocation, err := NormalizeBallot(Ballot{
				Kind:   BallotKindPoints,
				Points: tc.points,
			}, roomOptions)
			if err != nil {
				t.Fatalf("normalize failed: %v", err)
			}
			total := 0.0
			for _, option := range roomOptions {
				if math.Abs(allocation[option]-tc.want[option]) > 1e-9 {
					t.Fatalf("share mismatch for %s: want %f got %f",
						option, tc.want[option], allocation[option])
				}
				total += allocation[option]
			}
			if math.Abs(total-100) > 1e-9 {
				t.Fatalf("point shares must total 100, got %f", total)
			}
		})
	}
}

func TestPointBallotValidation(t *testing.T) {
	_, err := NormalizeBallot(Ballot{
		Kind:   BallotKindPoints,
		Points: map[string]float64{"Z": 50},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}

	_, err = NormalizeBallot(Ballot{
		Kind:   BallotKindPoints,
		Points: map[string]float64{"A": 101},
	}, roomOptions)
	if !errors.Is(err, domainerrors.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestPointBallotTieBreaksByOptionName(t *testing.T) {
	allocation, err := NormalizeBallot(Ballot{
		Kind:   BallotKindPoints,
		Points: map[string]float64{"A": 40, "B": 40},
	}, roomOptions)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if math.Abs(allocation["A"]-40) > 1e-9 || math.Abs(allocation["B"]-60) > 1e-9 {
		t.Fatalf("tied markers must split deterministically, got A=%f B=%f",
			allocation["A"], allocation["B"])
	}
}
