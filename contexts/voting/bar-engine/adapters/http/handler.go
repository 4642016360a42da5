package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"votebar/contexts/voting/bar-engine/application/commands"
	"votebar/contexts/voting/bar-engine/application/queries"
	"votebar/contexts/voting/bar-engine/domain/entities"
	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
	"votebar/contexts/voting/bar-engine/ports"
	httptransport "votebar/contexts/voting/bar-engine/transport/http"
)

type Handler struct {
	Rooms   commands.RoomUseCase
	Results queries.ResultsUseCase
	Logger  *slog.Logger
}

func (h Handler) CreateRoomHandler(
	ctx context.Context,
	req httptransport.CreateRoomRequest,
) (httptransport.RoomResponse, error) {
	result, err := h.Rooms.CreateRoom(ctx, commands.CreateRoomCommand{
		Options: req.Options,
		TTL:     time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return httptransport.RoomResponse{}, err
	}
	return mapRoom(ports.RoomView{Room: result.Room}), nil
}

func (h Handler) GetRoomHandler(ctx context.Context, roomID string) (httptransport.RoomResponse, error) {
	view, err := h.Results.GetRoom(ctx, roomID)
	if err != nil {
		return httptransport.RoomResponse{}, err
	}
	return mapRoom(view), nil
}

func (h Handler) ListRoomsHandler(ctx context.Context) (httptransport.RoomListResponse, error) {
	summaries, err := h.Results.ListRooms(ctx)
	if err != nil {
		return httptransport.RoomListResponse{}, err
	}
	rooms := make([]httptransport.RoomResponse, 0, len(summaries))
	for _, summary := range summaries {
		room := httptransport.RoomResponse{
			RoomID:    summary.RoomID,
			Options:   summary.Options,
			CreatedAt: summary.CreatedAt.Format(time.RFC3339Nano),
			VoteCount: summary.VoteCount,
		}
		if summary.ExpiresAt != nil {
			room.ExpiresAt = summary.ExpiresAt.Format(time.RFC3339Nano)
		}
		rooms = append(rooms, room)
	}
	return httptransport.RoomListResponse{Rooms: rooms}, nil
}

func (h Handler) SubmitBallotHandler(
	ctx context.Context,
	roomID string,
	req httptransport.SubmitBallotRequest,
) (httptransport.VoteResponse, error) {
	ballot, err := mapBallot(req)
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	result, err := h.Rooms.SubmitBallot(ctx, commands.SubmitBallotCommand{
		RoomID:  roomID,
		VoterID: req.VoterID,
		Ballot:  ballot,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	return httptransport.VoteResponse{
		VoteID:      result.Vote.VoteID,
		RoomID:      roomID,
		VoterID:     result.Vote.VoterID,
		Allocations: result.Vote.Allocations,
		SubmittedAt: result.Vote.SubmittedAt.Format(time.RFC3339Nano),
	}, nil
}

func (h Handler) RoomResultsHandler(ctx context.Context, roomID string) (httptransport.ResultsResponse, error) {
	aggregate, err := h.Results.RoomResults(ctx, roomID)
	if err != nil {
		return httptransport.ResultsResponse{}, err
	}
	options := make([]httptransport.OptionResultItem, 0, len(aggregate.Options))
	for _, option := range aggregate.Options {
		options = append(options, httptransport.OptionResultItem{
			Option:    option.Option,
			Mean:      option.Mean,
			VoteCount: option.VoteCount,
			ZeroVotes: option.ZeroVotes,
		})
	}
	return httptransport.ResultsResponse{
		RoomID:    aggregate.RoomID,
		VoteCount: aggregate.VoteCount,
		Options:   options,
	}, nil
}

func (h Handler) CleanupHandler(ctx context.Context) (httptransport.CleanupResponse, error) {
	evicted, err := h.Rooms.CleanupExpired(ctx)
	if err != nil {
		return httptransport.CleanupResponse{}, err
	}
	return httptransport.CleanupResponse{Evicted: evicted}, nil
}

// mapBallot selects the vote form from the wire payload. Supplying more
// than one form, or none at all, is a malformed ballot.
func mapBallot(req httptransport.SubmitBallotRequest) (entities.Ballot, error) {
	forms := 0
	if len(req.Intervals) > 0 {
		forms++
	}
	if len(req.Percentages) > 0 {
		forms++
	}
	if len(req.Points) > 0 {
		forms++
	}
	if forms != 1 {
		return entities.Ballot{}, domainerrors.ErrInvalidBallot
	}
	switch {
	case len(req.Intervals) > 0:
		intervals := make(map[string]entities.Interval, len(req.Intervals))
		for _, item := range req.Intervals {
			if _, dup := intervals[item.Option]; dup {
				return entities.Ballot{}, domainerrors.ErrInvalidBallot
			}
			intervals[item.Option] = entities.Interval{Start: item.Start, End: item.End}
		}
		return entities.Ballot{Kind: entities.BallotKindPositions, Intervals: intervals}, nil
	case len(req.Percentages) > 0:
		return entities.Ballot{Kind: entities.BallotKindPercentages, Percentages: req.Percentages}, nil
	default:
		return entities.Ballot{Kind: entities.BallotKindPoints, Points: req.Points}, nil
	}
}

func mapRoom(view ports.RoomView) httptransport.RoomResponse {
	resp := httptransport.RoomResponse{
		RoomID:    view.Room.RoomID,
		Options:   view.Room.Options,
		CreatedAt: view.Room.CreatedAt.Format(time.RFC3339Nano),
		VoteCount: view.VoteCount,
	}
	if deadline, ok := view.Room.ExpiresAt(); ok {
		resp.ExpiresAt = deadline.Format(time.RFC3339Nano)
	}
	return resp
}
