package entities

import (
	"fmt"
	"time"

	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

// MaxRanking is the sentinel rank assigned to every ballot option a voter did
// not explicitly rank. It marks "ranked last / unranked".
const MaxRanking = 10000

// Vote is the read-only view of a recorded vote. The only implementation is
// the unexported recordedVote, constructed exclusively by VoteFactory, so
// every Vote in the system has passed full validation.
type Vote interface {
	PollID() PollID
	Rankings() map[Option]int
}

// recordedVote is the immutable, anonymous vote record. It references its
// poll by id only and carries exactly one rank per ballot option.
type recordedVote struct {
	pollID   PollID
	rankings map[Option]int
}

// newRecordedVote enforces the structural invariants every vote must satisfy
// regardless of which poll produced it: a poll reference, no empty options,
// and every rank inside [1, MaxRanking].
func newRecordedVote(pollID PollID, rankings map[Option]int) (recordedVote, error) {
	if pollID == "" {
		return recordedVote{}, fmt.Errorf("%w: vote poll id must not be empty", domainerrors.ErrInvalidArgument)
	}
	if rankings == nil {
		return recordedVote{}, fmt.Errorf("%w: vote rankings must not be nil", domainerrors.ErrInvalidArgument)
	}
	copied := make(map[Option]int, len(rankings))
	for option, rank := range rankings {
		if option.IsZero() {
			return recordedVote{}, fmt.Errorf("%w: ranked option must not be empty", domainerrors.ErrInvalidRanking)
		}
		if rank < 1 || rank > MaxRanking {
			return recordedVote{}, fmt.Errorf("%w: rank %d for option %q must be between 1 and %d",
				domainerrors.ErrInvalidRanking, rank, option.Text(), MaxRanking)
		}
		copied[option] = rank
	}
	return recordedVote{pollID: pollID, rankings: copied}, nil
}

func (v recordedVote) PollID() PollID {
	return v.pollID
}

// Rankings returns a defensive copy; callers cannot reach the internal map.
func (v recordedVote) Rankings() map[Option]int {
	out := make(map[Option]int, len(v.rankings))
	for option, rank := range v.rankings {
		out[option] = rank
	}
	return out
}

// VoteFactory turns a caller-supplied partial ranking plus a poll into a
// complete, validated Vote. It is stateless and safe for concurrent use.
//
// The factory owns the poll-specific rules (readiness, ballot membership,
// sentinel completion); the recordedVote constructor owns the universal
// structural rules. The split keeps the constructor reusable for any future
// vote-creation path.
type VoteFactory struct{}

// CreateVote validates rankings against the poll at the given instant and
// produces the completed vote. Partial rankings are a supported feature:
// every ballot option missing from the input is filled with MaxRanking.
//
// The readiness check runs before any ranking validation, so state errors
// take precedence over data errors.
func (VoteFactory) CreateVote(poll *Poll, rankings map[Option]int, now time.Time) (Vote, error) {
	if poll == nil {
		return nil, fmt.Errorf("%w: poll must not be nil", domainerrors.ErrInvalidArgument)
	}
	if !poll.CanAcceptVotes(now) {
		return nil, fmt.Errorf("%w: poll %s", domainerrors.ErrPollNotReadyForVoting, poll.ID())
	}

	ballot := poll.Ballot()
	completed := make(map[Option]int, ballot.Size())
	for option, rank := range rankings {
		if !ballot.Contains(option) {
			return nil, fmt.Errorf("%w: option %q", domainerrors.ErrOptionNotInBallot, option.Text())
		}
		completed[option] = rank
	}
	for _, option := range ballot.Options() {
		if _, ranked := completed[option]; !ranked {
			completed[option] = MaxRanking
		}
	}

	return newRecordedVote(poll.ID(), completed)
}
