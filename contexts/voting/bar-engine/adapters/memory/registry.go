package memory

import (
	"context"
	"sync"
	"time"

	"votebar/contexts/voting/bar-engine/domain/entities"
	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
	"votebar/contexts/voting/bar-engine/ports"

	"github.com/google/uuid"
)

// roomState is one room's mutable state. Its own mutex serializes vote
// appends and tally reads so two submissions to the same room cannot
// interleave, while unrelated rooms never contend.
type roomState struct {
	mu      sync.Mutex
	room    entities.Room
	votes   []entities.NormalizedBallot
	tally   entities.Tally
	evicted bool
}

// Registry is the in-memory room registry. The outer RWMutex guards only
// the identifier map; per-room work happens under the room's lock. It also
// provides the Clock and IDGenerator ports so tests and the composition
// root can wire the engine from a single value.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*roomState
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*roomState)}
}

func (r *Registry) CreateRoom(_ context.Context, room entities.Room) error {
	if err := entities.ValidateOptions(room.Options); err != nil {
		return err
	}
	state := &roomState{
		room:  room,
		tally: entities.NewTally(room.Options),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.RoomID] = state
	return nil
}

func (r *Registry) GetRoom(_ context.Context, roomID string) (ports.RoomView, error) {
	state, err := r.lookup(roomID)
	if err != nil {
		return ports.RoomView{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.evicted {
		return ports.RoomView{}, domainerrors.ErrRoomNotFound
	}
	room := state.room
	room.Options = append([]string(nil), state.room.Options...)
	return ports.RoomView{Room: room, VoteCount: len(state.votes)}, nil
}

// AppendVote appends the accepted vote and folds it into the running tally
// as one unit under the room lock. A room evicted mid-flight surfaces as
// ErrRoomNotFound, never as a partial write.
func (r *Registry) AppendVote(_ context.Context, roomID string, vote entities.NormalizedBallot) error {
	state, err := r.lookup(roomID)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.evicted {
		return domainerrors.ErrRoomNotFound
	}
	state.votes = append(state.votes, vote.Clone())
	state.tally.Fold(vote.Allocations)
	return nil
}

func (r *Registry) Results(_ context.Context, roomID string) (entities.AggregateResult, error) {
	state, err := r.lookup(roomID)
	if err != nil {
		return entities.AggregateResult{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.evicted {
		return entities.AggregateResult{}, domainerrors.ErrRoomNotFound
	}
	return state.tally.Result(state.room.RoomID, state.room.Options), nil
}

func (r *Registry) ListVotes(_ context.Context, roomID string) ([]entities.NormalizedBallot, error) {
	state, err := r.lookup(roomID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.evicted {
		return nil, domainerrors.ErrRoomNotFound
	}
	votes := make([]entities.NormalizedBallot, 0, len(state.votes))
	for _, vote := range state.votes {
		votes = append(votes, vote.Clone())
	}
	return votes, nil
}

func (r *Registry) ListRooms(_ context.Context) ([]entities.RoomSummary, error) {
	r.mu.RLock()
	states := make([]*roomState, 0, len(r.rooms))
	for _, state := range r.rooms {
		states = append(states, state)
	}
	r.mu.RUnlock()

	summaries := make([]entities.RoomSummary, 0, len(states))
	for _, state := range states {
		state.mu.Lock()
		if state.evicted {
			state.mu.Unlock()
			continue
		}
		summary := entities.RoomSummary{
			RoomID:    state.room.RoomID,
			Options:   append([]string(nil), state.room.Options...),
			CreatedAt: state.room.CreatedAt,
			VoteCount: len(state.votes),
		}
		if deadline, ok := state.room.ExpiresAt(); ok {
			expires := deadline
			summary.ExpiresAt = &expires
		}
		state.mu.Unlock()
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// DeleteExpired removes every room past its deadline. Expiry is decided
// from the room's immutable CreatedAt/TTL, so no room lock is needed to
// evaluate rooms the sweep has no business touching; only rooms actually
// being evicted get locked, briefly, to flip the tombstone.
func (r *Registry) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	expired := make([]*roomState, 0)
	for roomID, state := range r.rooms {
		if state.room.IsExpired(now) {
			expired = append(expired, state)
			delete(r.rooms, roomID)
		}
	}
	r.mu.Unlock()

	for _, state := range expired {
		state.mu.Lock()
		state.evicted = true
		state.mu.Unlock()
	}
	return len(expired), nil
}

func (r *Registry) lookup(roomID string) (*roomState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.rooms[roomID]
	if !ok {
		return nil, domainerrors.ErrRoomNotFound
	}
	return state, nil
}

// Now implements ports.Clock.
func (r *Registry) Now() time.Time {
	return time.Now().UTC()
}

// NewID implements ports.IDGenerator with uuid tokens, making identifier
// collisions negligible for the life of the process.
func (r *Registry) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
