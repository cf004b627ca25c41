package queries

import (
	"context"
	"log/slog"
	"time"

	application "rankify/contexts/polling/poll-engine/application"
	"rankify/contexts/polling/poll-engine/domain/entities"
	"rankify/contexts/polling/poll-engine/ports"
)

// PollDetails is the read-only projection of a poll aggregate. State is
// computed at query time; nothing here is stored.
type PollDetails struct {
	ID      entities.PollID
	Title   string
	Options []string
	State   entities.PollState
	Start   *time.Time
	End     *time.Time
	Created time.Time
}

// PollQueries serves the read side of the module. The ballot projection goes
// through an optional read-through cache; cache failures degrade to repository
// reads and never fail the query.
type PollQueries struct {
	Polls     ports.PollRepository
	Cache     ports.BallotCache
	BallotTTL time.Duration
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (q PollQueries) PollDetails(ctx context.Context, pollID entities.PollID) (PollDetails, error) {
	poll, err := q.Polls.GetByID(ctx, pollID)
	if err != nil {
		return PollDetails{}, err
	}
	schedule := poll.Schedule()
	return PollDetails{
		ID:      poll.ID(),
		Title:   poll.Title(),
		Options: optionTexts(poll.Ballot()),
		State:   poll.State(q.now()),
		Start:   schedule.Start(),
		End:     schedule.End(),
		Created: poll.Created(),
	}, nil
}

func (q PollQueries) Ballot(ctx context.Context, pollID entities.PollID) ([]string, error) {
	logger := application.ResolveLogger(q.Logger)

	if q.Cache != nil {
		options, found, err := q.Cache.GetBallot(ctx, pollID)
		if err != nil {
			logger.Warn("ballot cache read failed",
				"event", "ballot_cache_read_failed",
				"module", "polling/poll-engine",
				"layer", "application",
				"poll_id", pollID.String(),
				"error", err.Error(),
			)
		} else if found {
			return options, nil
		}
	}

	poll, err := q.Polls.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	options := optionTexts(poll.Ballot())

	if q.Cache != nil {
		if err := q.Cache.PutBallot(ctx, pollID, options, q.resolveBallotTTL()); err != nil {
			logger.Warn("ballot cache write failed",
				"event", "ballot_cache_write_failed",
				"module", "polling/poll-engine",
				"layer", "application",
				"poll_id", pollID.String(),
				"error", err.Error(),
			)
		}
	}
	return options, nil
}

func (q PollQueries) resolveBallotTTL() time.Duration {
	if q.BallotTTL <= 0 {
		return 5 * time.Minute
	}
	return q.BallotTTL
}

func (q PollQueries) now() time.Time {
	if q.Clock != nil {
		return q.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func optionTexts(ballot entities.Ballot) []string {
	options := ballot.Options()
	texts := make([]string, 0, len(options))
	for _, option := range options {
		texts = append(texts, option.Text())
	}
	return texts
}
