package commands

import (
	"context"
	"log/slog"
	"time"

	application "votebar/contexts/voting/bar-engine/application"
	"votebar/contexts/voting/bar-engine/domain/entities"
	"votebar/contexts/voting/bar-engine/ports"
)

// CreateRoomCommand is the write-model input for room creation. A zero TTL
// creates a room that never expires.
type CreateRoomCommand struct {
	Options []string
	TTL     time.Duration
}

type CreateRoomResult struct {
	Room entities.Room
}

// SubmitBallotCommand carries one participant's candidate vote. VoterID is
// optional; the engine assigns one when the caller stays anonymous.
type SubmitBallotCommand struct {
	RoomID  string
	VoterID string
	Ballot  entities.Ballot
}

type SubmitBallotResult struct {
	Vote entities.NormalizedBallot
}

// RoomUseCase orchestrates the room write paths: creation, ballot
// submission (validate, normalize, append + fold atomically), and expiry
// cleanup. It owns no scheduling; the host drives CleanupExpired.
type RoomUseCase struct {
	Registry ports.RoomRegistry
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger

	// DefaultTTL applies when a create command carries no TTL. Zero keeps
	// such rooms alive forever.
	DefaultTTL time.Duration

	// OnEvicted observes the eviction count of every successful cleanup.
	// The admin endpoint and the scheduled sweep both funnel through
	// CleanupExpired, so one hook sees every eviction.
	OnEvicted func(count int)
}

// CreateRoom registers a new room with a fixed, duplicate-free option set
// and returns it with a generated identifier.
func (uc RoomUseCase) CreateRoom(ctx context.Context, cmd CreateRoomCommand) (CreateRoomResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := entities.ValidateOptions(cmd.Options); err != nil {
		logger.Warn("room create rejected",
			"event", "votebar_room_create_rejected",
			"module", "voting/bar-engine",
			"layer", "application",
			"option_count", len(cmd.Options),
			"error", err.Error(),
		)
		return CreateRoomResult{}, err
	}

	roomID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return CreateRoomResult{}, err
	}
	ttl := cmd.TTL
	if ttl < 0 {
		ttl = 0
	}
	if ttl == 0 {
		ttl = uc.DefaultTTL
	}
	room := entities.Room{
		RoomID:    roomID,
		Options:   append([]string(nil), cmd.Options...),
		CreatedAt: uc.now(),
		TTL:       ttl,
	}
	if err := uc.Registry.CreateRoom(ctx, room); err != nil {
		return CreateRoomResult{}, err
	}

	logger.Info("room created",
		"event", "votebar_room_created",
		"module", "voting/bar-engine",
		"layer", "application",
		"room_id", room.RoomID,
		"option_count", len(room.Options),
		"ttl", room.TTL.String(),
	)
	return CreateRoomResult{Room: room}, nil
}

// SubmitBallot validates the candidate against the room's option set,
// normalizes it, and appends it with a server-assigned timestamp. A
// rejected ballot leaves no observable trace on the room.
func (uc RoomUseCase) SubmitBallot(ctx context.Context, cmd SubmitBallotCommand) (SubmitBallotResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	view, err := uc.Registry.GetRoom(ctx, cmd.RoomID)
	if err != nil {
		return SubmitBallotResult{}, err
	}

	allocation, err := entities.NormalizeBallot(cmd.Ballot, view.Room.Options)
	if err != nil {
		logger.Warn("ballot rejected",
			"event", "votebar_ballot_rejected",
			"module", "voting/bar-engine",
			"layer", "application",
			"room_id", cmd.RoomID,
			"ballot_kind", string(cmd.Ballot.Kind),
			"error", err.Error(),
		)
		return SubmitBallotResult{}, err
	}

	voteID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return SubmitBallotResult{}, err
	}
	voterID := cmd.VoterID
	if voterID == "" {
		voterID, err = uc.IDGen.NewID(ctx)
		if err != nil {
			return SubmitBallotResult{}, err
		}
	}

	vote := entities.NormalizedBallot{
		VoteID:      voteID,
		VoterID:     voterID,
		Allocations: allocation,
		SubmittedAt: uc.now(),
	}
	if err := uc.Registry.AppendVote(ctx, cmd.RoomID, vote); err != nil {
		return SubmitBallotResult{}, err
	}

	logger.Info("ballot accepted",
		"event", "votebar_ballot_accepted",
		"module", "voting/bar-engine",
		"layer", "application",
		"room_id", cmd.RoomID,
		"vote_id", vote.VoteID,
		"voter_id", vote.VoterID,
		"ballot_kind", string(cmd.Ballot.Kind),
	)
	return SubmitBallotResult{Vote: vote}, nil
}

// CleanupExpired evicts every room past its deadline and returns the count
// removed. Submission paths never evict; this is the only delete path.
func (uc RoomUseCase) CleanupExpired(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(uc.Logger)
	evicted, err := uc.Registry.DeleteExpired(ctx, uc.now())
	if err != nil {
		return 0, err
	}
	if uc.OnEvicted != nil {
		uc.OnEvicted(evicted)
	}
	if evicted > 0 {
		logger.Info("expired rooms evicted",
			"event", "votebar_rooms_evicted",
			"module", "voting/bar-engine",
			"layer", "application",
			"evicted_count", evicted,
		)
	}
	return evicted, nil
}

func (uc RoomUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
