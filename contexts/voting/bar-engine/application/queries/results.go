package queries

import (
	"context"
	"sort"

	"votebar/contexts/voting/bar-engine/domain/entities"
	"votebar/contexts/voting/bar-engine/ports"
)

// ResultsUseCase serves the read side: current aggregates, room views, and
// listings. Results are recomputed from the room's running tally on demand
// and never stored.
type ResultsUseCase struct {
	Registry ports.RoomRegistry
}

func (uc ResultsUseCase) RoomResults(ctx context.Context, roomID string) (entities.AggregateResult, error) {
	return uc.Registry.Results(ctx, roomID)
}

func (uc ResultsUseCase) GetRoom(ctx context.Context, roomID string) (ports.RoomView, error) {
	return uc.Registry.GetRoom(ctx, roomID)
}

// RoomVotes returns the room's accepted votes in submission order.
func (uc ResultsUseCase) RoomVotes(ctx context.Context, roomID string) ([]entities.NormalizedBallot, error) {
	return uc.Registry.ListVotes(ctx, roomID)
}

func (uc ResultsUseCase) ListRooms(ctx context.Context) ([]entities.RoomSummary, error) {
	rooms, err := uc.Registry.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].RoomID < rooms[j].RoomID
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})
	return rooms, nil
}
