package commands

import (
	"context"
	"log/slog"
	"time"

	application "rankify/contexts/polling/poll-engine/application"
	"rankify/contexts/polling/poll-engine/domain/entities"
	"rankify/contexts/polling/poll-engine/ports"
)

// CastVoteCommand carries a caller-supplied, possibly partial mapping of
// option text to 1-based rank. Votes are anonymous; there is no voter
// identity anywhere in the command.
type CastVoteCommand struct {
	PollID   entities.PollID
	Rankings map[string]int
}

// CastVoteUseCase records rank-ordered ballots. All validation lives in the
// vote factory and the vote constructor; the use case only loads the poll,
// translates option texts, and persists the result.
type CastVoteUseCase struct {
	Polls   ports.PollRepository
	Votes   ports.VoteRecorder
	Factory entities.VoteFactory
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc CastVoteUseCase) CastVote(ctx context.Context, cmd CastVoteCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	poll, err := uc.Polls.GetByID(ctx, cmd.PollID)
	if err != nil {
		return err
	}

	rankings := make(map[entities.Option]int, len(cmd.Rankings))
	for text, rank := range cmd.Rankings {
		option, err := entities.NewOption(text)
		if err != nil {
			return err
		}
		rankings[option] = rank
	}

	vote, err := uc.Factory.CreateVote(poll, rankings, uc.now())
	if err != nil {
		logger.Warn("vote rejected",
			"event", "vote_rejected",
			"module", "polling/poll-engine",
			"layer", "application",
			"poll_id", cmd.PollID.String(),
			"error", err.Error(),
		)
		return err
	}
	if err := uc.Votes.SaveVote(ctx, vote); err != nil {
		logger.Error("vote persist failed",
			"event", "vote_persist_failed",
			"module", "polling/poll-engine",
			"layer", "application",
			"poll_id", cmd.PollID.String(),
			"error", err.Error(),
		)
		return err
	}

	logger.Info("vote recorded",
		"event", "vote_recorded",
		"module", "polling/poll-engine",
		"layer", "application",
		"poll_id", cmd.PollID.String(),
		"ranked", len(cmd.Rankings),
		"ballot_size", poll.Ballot().Size(),
	)
	return nil
}

func (uc CastVoteUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
