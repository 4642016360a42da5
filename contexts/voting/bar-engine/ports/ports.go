package ports

import (
	"context"
	"time"

	"votebar/contexts/voting/bar-engine/domain/entities"
)

// RoomView is the read shape the registry exposes for a single room.
type RoomView struct {
	Room      entities.Room
	VoteCount int
}

// RoomRegistry owns the process-wide set of rooms. Implementations must
// serialize access per room so concurrent submissions to the same room
// cannot corrupt the running tally, while submissions to different rooms
// proceed without contention.
type RoomRegistry interface {
	CreateRoom(ctx context.Context, room entities.Room) error
	GetRoom(ctx context.Context, roomID string) (RoomView, error)

	// AppendVote atomically appends the accepted vote and folds it into the
	// room's running tally. It returns ErrRoomNotFound if the room was
	// evicted, so an in-flight submission never lands in a deleted room.
	AppendVote(ctx context.Context, roomID string, vote entities.NormalizedBallot) error

	Results(ctx context.Context, roomID string) (entities.AggregateResult, error)
	ListVotes(ctx context.Context, roomID string) ([]entities.NormalizedBallot, error)
	ListRooms(ctx context.Context) ([]entities.RoomSummary, error)

	// DeleteExpired evicts every room past its deadline and returns how many
	// were removed. Evicted identifiers are permanently invalid.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
