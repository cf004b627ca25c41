package ports

import (
	"context"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"
)

// PollRepository is the lookup/persist port for poll aggregates. Update must
// only persist schedule changes; title and ballot are fixed for the poll's
// lifetime.
type PollRepository interface {
	Create(ctx context.Context, poll *entities.Poll) (entities.PollID, error)
	Update(ctx context.Context, poll *entities.Poll) error
	GetByID(ctx context.Context, id entities.PollID) (*entities.Poll, error)
	ExistsByID(ctx context.Context, id entities.PollID) (bool, error)
}

// VoteRecorder appends vote records. Votes are write-once; there is no
// update or delete operation.
type VoteRecorder interface {
	SaveVote(ctx context.Context, vote entities.Vote) error
}

// BallotCache is a read-through cache for ballot projections. A miss returns
// found=false with no error; cache failures must never fail the read path.
type BallotCache interface {
	GetBallot(ctx context.Context, id entities.PollID) ([]string, bool, error)
	PutBallot(ctx context.Context, id entities.PollID, options []string, ttl time.Duration) error
	Invalidate(ctx context.Context, id entities.PollID) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
