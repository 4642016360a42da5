package barengine

import (
	"log/slog"
	"time"

	httpadapter "votebar/contexts/voting/bar-engine/adapters/http"
	"votebar/contexts/voting/bar-engine/adapters/memory"
	"votebar/contexts/voting/bar-engine/application/commands"
	"votebar/contexts/voting/bar-engine/application/queries"
	"votebar/contexts/voting/bar-engine/application/workers"
	"votebar/contexts/voting/bar-engine/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Sweeper  workers.RoomSweeper
	Registry *memory.Registry
}

type Dependencies struct {
	Registry ports.RoomRegistry
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger

	// DefaultRoomTTL applies to rooms created without an explicit TTL.
	DefaultRoomTTL time.Duration

	// OnEvicted, when set, observes the eviction count of every cleanup
	// regardless of whether the sweep or the admin endpoint triggered it.
	OnEvicted func(count int)
}

func NewModule(deps Dependencies) Module {
	roomUseCase := commands.RoomUseCase{
		Registry:   deps.Registry,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
		DefaultTTL: deps.DefaultRoomTTL,
		OnEvicted:  deps.OnEvicted,
	}
	resultsUseCase := queries.ResultsUseCase{
		Registry: deps.Registry,
	}
	return Module{
		Handler: httpadapter.Handler{
			Rooms:   roomUseCase,
			Results: resultsUseCase,
			Logger:  deps.Logger,
		},
		Sweeper: workers.RoomSweeper{
			Rooms:  roomUseCase,
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the engine onto a fresh in-memory registry, which
// doubles as the clock and identifier source. Tests construct isolated
// instances this way; nothing in the engine is a process-wide singleton.
func NewInMemoryModule(logger *slog.Logger) Module {
	registry := memory.NewRegistry()
	module := NewModule(Dependencies{
		Registry: registry,
		Clock:    registry,
		IDGen:    registry,
		Logger:   logger,
	})
	module.Registry = registry
	return module
}
