package queries

import (
	"context"
	"math"
	"testing"
	"time"

	"votebar/contexts/voting/bar-engine/adapters/memory"
	"votebar/contexts/voting/bar-engine/domain/entities"
)

func seedRoom(t *testing.T, registry *memory.Registry, roomID string, createdAt time.Time) entities.Room {
	t.Helper()
	room := entities.Room{
		RoomID:    roomID,
		Options:   []string{"A", "B"},
		CreatedAt: createdAt,
	}
	if err := registry.CreateRoom(context.Background(), room); err != nil {
		t.Fatalf("create room failed: %v", err)
	}
	return room
}

func TestRoomVotesReplayMatchesRunningResults(t *testing.T) {
	registry := memory.NewRegistry()
	uc := ResultsUseCase{Registry: registry}
	ctx := context.Background()
	room := seedRoom(t, registry, "room-1", time.Now().UTC())

	allocations := []entities.Allocation{
		{"A": 70, "B": 30},
		{"A": 0, "B": 100},
		{"A": 25, "B": 25},
	}
	for i, allocation := range allocations {
		vote := entities.NormalizedBallot{
			VoteID:      room.RoomID + "-vote",
			VoterID:     "voter",
			Allocations: allocation,
			SubmittedAt: time.Now().UTC(),
		}
		if err := registry.AppendVote(ctx, room.RoomID, vote); err != nil {
			t.Fatalf("append vote %d failed: %v", i, err)
		}
	}

	votes, err := uc.RoomVotes(ctx, room.RoomID)
	if err != nil {
		t.Fatalf("room votes failed: %v", err)
	}
	if len(votes) != len(allocations) {
		t.Fatalf("expected %d votes, got %d", len(allocations), len(votes))
	}

	running, err := uc.RoomResults(ctx, room.RoomID)
	if err != nil {
		t.Fatalf("room results failed: %v", err)
	}
	replayed := entities.RebuildTally(room.Options, votes).Result(room.RoomID, room.Options)
	if replayed.VoteCount != running.VoteCount {
		t.Fatalf("replayed count %d differs from running count %d", replayed.VoteCount, running.VoteCount)
	}
	for i := range running.Options {
		got, want := running.Options[i], replayed.Options[i]
		if got.Option != want.Option || math.Abs(got.Mean-want.Mean) > 1e-9 || got.ZeroVotes != want.ZeroVotes {
			t.Fatalf("replayed aggregate diverges for %s: %+v vs %+v", got.Option, got, want)
		}
	}
}

func TestListRoomsSortsByCreationThenID(t *testing.T) {
	registry := memory.NewRegistry()
	uc := ResultsUseCase{Registry: registry}
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	seedRoom(t, registry, "room-b", base)
	seedRoom(t, registry, "room-a", base)
	seedRoom(t, registry, "room-c", base.Add(-time.Minute))

	rooms, err := uc.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("list rooms failed: %v", err)
	}
	got := make([]string, 0, len(rooms))
	for _, room := range rooms {
		got = append(got, room.RoomID)
	}
	want := []string{"room-c", "room-a", "room-b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v want %v", got, want)
		}
	}
}
