package workers

import (
	"context"
	"log/slog"

	application "votebar/contexts/voting/bar-engine/application"
	"votebar/contexts/voting/bar-engine/application/commands"
)

// RoomSweeper evicts rooms that crossed their TTL deadline. The engine only
// exposes RunOnce; the host composition root owns the schedule and cancels
// it through ctx.
type RoomSweeper struct {
	Rooms  commands.RoomUseCase
	Logger *slog.Logger
}

func (s RoomSweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	evicted, err := s.Rooms.CleanupExpired(ctx)
	if err != nil {
		logger.Error("room expiry sweep failed",
			"event", "votebar_room_sweep_failed",
			"module", "voting/bar-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if evicted > 0 {
		logger.Info("room expiry sweep completed",
			"event", "votebar_room_sweep_completed",
			"module", "voting/bar-engine",
			"layer", "worker",
			"evicted_count", evicted,
		)
	}
	return nil
}
