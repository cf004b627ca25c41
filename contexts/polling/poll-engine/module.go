package pollengine

import (
	"log/slog"
	"time"

	httpadapter "rankify/contexts/polling/poll-engine/adapters/http"
	"rankify/contexts/polling/poll-engine/adapters/memory"
	"rankify/contexts/polling/poll-engine/application/commands"
	"rankify/contexts/polling/poll-engine/application/queries"
	"rankify/contexts/polling/poll-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Polls     ports.PollRepository
	Votes     ports.VoteRecorder
	Cache     ports.BallotCache
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	BallotTTL time.Duration
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Initiate: commands.InitiatePollUseCase{
				Polls:  deps.Polls,
				Clock:  deps.Clock,
				IDGen:  deps.IDGen,
				Logger: deps.Logger,
			},
			Transitions: commands.ChangePollStateUseCase{
				Polls:  deps.Polls,
				Cache:  deps.Cache,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Votes: commands.CastVoteUseCase{
				Polls:  deps.Polls,
				Votes:  deps.Votes,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Queries: queries.PollQueries{
				Polls:     deps.Polls,
				Cache:     deps.Cache,
				BallotTTL: deps.BallotTTL,
				Clock:     deps.Clock,
				Logger:    deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires every port to a single in-memory store. Used by
// tests and local runs without external infrastructure.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Polls:     store,
		Votes:     store,
		Cache:     store,
		Clock:     store,
		IDGen:     store,
		BallotTTL: 5 * time.Minute,
		Logger:    logger,
	})
	module.Store = store
	return module
}
