package workers

import (
	"context"
	"testing"
	"time"

	"votebar/contexts/voting/bar-engine/adapters/memory"
	"votebar/contexts/voting/bar-engine/application/commands"
	"votebar/contexts/voting/bar-engine/domain/entities"
	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestRoomSweeperEvictsOnlyExpiredRooms(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 2, 25, 13, 0, 0, 0, time.UTC)}
	registry := memory.NewRegistry()
	useCase := commands.RoomUseCase{Registry: registry, Clock: clock, IDGen: registry}
	sweeper := RoomSweeper{Rooms: useCase}
	ctx := context.Background()

	shortLived, err := useCase.CreateRoom(ctx, commands.CreateRoomCommand{
		Options: []string{"A"},
		TTL:     time.Minute,
	})
	if err != nil {
		t.Fatalf("create short-lived room failed: %v", err)
	}
	durable, err := useCase.CreateRoom(ctx, commands.CreateRoomCommand{
		Options: []string{"A"},
	})
	if err != nil {
		t.Fatalf("create durable room failed: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Minute)
	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, err := registry.GetRoom(ctx, shortLived.Room.RoomID); err != domainerrors.ErrRoomNotFound {
		t.Fatalf("expired room still resolvable: %v", err)
	}
	if _, err := registry.GetRoom(ctx, durable.Room.RoomID); err != nil {
		t.Fatalf("room without deadline was swept: %v", err)
	}

	if _, err := useCase.SubmitBallot(ctx, commands.SubmitBallotCommand{
		RoomID: durable.Room.RoomID,
		Ballot: entities.Ballot{
			Kind:        entities.BallotKindPercentages,
			Percentages: map[string]float64{"A": 100},
		},
	}); err != nil {
		t.Fatalf("surviving room must keep accepting ballots: %v", err)
	}
}

func TestRoomSweepIsIdempotent(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 2, 25, 13, 0, 0, 0, time.UTC)}
	registry := memory.NewRegistry()
	useCase := commands.RoomUseCase{Registry: registry, Clock: clock, IDGen: registry}
	sweeper := RoomSweeper{Rooms: useCase}
	ctx := context.Background()

	if _, err := useCase.CreateRoom(ctx, commands.CreateRoomCommand{
		Options: []string{"A"},
		TTL:     time.Second,
	}); err != nil {
		t.Fatalf("create room failed: %v", err)
	}

	clock.now = clock.now.Add(time.Hour)
	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}
	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
}
