package commands

import (
	"context"
	"log/slog"
	"time"

	application "rankify/contexts/polling/poll-engine/application"
	"rankify/contexts/polling/poll-engine/domain/entities"
	"rankify/contexts/polling/poll-engine/ports"
)

// ChangePollStateUseCase drives the poll lifecycle state machine. Each
// transition loads the aggregate, applies the state change, and persists the
// replaced schedule in one logical transaction owned by the repository.
type ChangePollStateUseCase struct {
	Polls  ports.PollRepository
	Cache  ports.BallotCache
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc ChangePollStateUseCase) StartVoting(ctx context.Context, pollID entities.PollID) error {
	return uc.transition(ctx, pollID, "start_voting", func(poll *entities.Poll, now time.Time) error {
		return poll.StartVoting(now)
	})
}

func (uc ChangePollStateUseCase) EndVoting(ctx context.Context, pollID entities.PollID) error {
	return uc.transition(ctx, pollID, "end_voting", func(poll *entities.Poll, now time.Time) error {
		return poll.EndVoting(now)
	})
}

func (uc ChangePollStateUseCase) transition(
	ctx context.Context,
	pollID entities.PollID,
	operation string,
	apply func(*entities.Poll, time.Time) error,
) error {
	logger := application.ResolveLogger(uc.Logger)

	poll, err := uc.Polls.GetByID(ctx, pollID)
	if err != nil {
		return err
	}
	now := uc.now()
	if err := apply(poll, now); err != nil {
		logger.Warn("poll state transition rejected",
			"event", "poll_transition_rejected",
			"module", "polling/poll-engine",
			"layer", "application",
			"poll_id", pollID.String(),
			"operation", operation,
			"state", poll.State(now),
			"error", err.Error(),
		)
		return err
	}
	if err := uc.Polls.Update(ctx, poll); err != nil {
		logger.Error("poll state transition persist failed",
			"event", "poll_transition_persist_failed",
			"module", "polling/poll-engine",
			"layer", "application",
			"poll_id", pollID.String(),
			"operation", operation,
			"error", err.Error(),
		)
		return err
	}
	if uc.Cache != nil {
		if err := uc.Cache.Invalidate(ctx, pollID); err != nil {
			logger.Warn("ballot cache invalidation failed",
				"event", "poll_cache_invalidate_failed",
				"module", "polling/poll-engine",
				"layer", "application",
				"poll_id", pollID.String(),
				"error", err.Error(),
			)
		}
	}

	logger.Info("poll state transition applied",
		"event", "poll_transition_applied",
		"module", "polling/poll-engine",
		"layer", "application",
		"poll_id", pollID.String(),
		"operation", operation,
		"state", poll.State(now),
	)
	return nil
}

func (uc ChangePollStateUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
