package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	application "rankify/contexts/polling/poll-engine/application"
	"rankify/contexts/polling/poll-engine/domain/entities"
	"rankify/contexts/polling/poll-engine/ports"
)

// InitiatePollCommand is the write-model input for poll creation. Start and
// End are optional: a poll created without a start opens in preparation, a
// poll created with a start in the past opens directly for voting.
type InitiatePollCommand struct {
	Title   string
	Options []string
	Start   *time.Time
	End     *time.Time
}

// InitiatePollUseCase creates poll aggregates and persists them through the
// repository port.
type InitiatePollUseCase struct {
	Polls  ports.PollRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc InitiatePollUseCase) InitiatePoll(ctx context.Context, cmd InitiatePollCommand) (entities.PollID, error) {
	logger := application.ResolveLogger(uc.Logger)

	ballot, err := entities.NewBallotFromTexts(cmd.Options)
	if err != nil {
		logger.Warn("poll initiation rejected",
			"event", "poll_initiate_validation_failed",
			"module", "polling/poll-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return "", err
	}
	schedule, err := entities.NewSchedule(cmd.Start, cmd.End)
	if err != nil {
		return "", err
	}

	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return "", fmt.Errorf("generate poll id: %w", err)
	}
	poll, err := entities.NewPoll(entities.PollID(id), cmd.Title, ballot, schedule, uc.now())
	if err != nil {
		return "", err
	}

	pollID, err := uc.Polls.Create(ctx, poll)
	if err != nil {
		logger.Error("poll creation failed",
			"event", "poll_initiate_persist_failed",
			"module", "polling/poll-engine",
			"layer", "application",
			"poll_id", id,
			"error", err.Error(),
		)
		return "", err
	}

	logger.Info("poll created",
		"event", "poll_initiated",
		"module", "polling/poll-engine",
		"layer", "application",
		"poll_id", pollID.String(),
		"options", ballot.Size(),
		"state", poll.State(uc.now()),
	)
	return pollID, nil
}

func (uc InitiatePollUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
