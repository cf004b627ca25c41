package entities

import (
	"fmt"
	"strings"
	"time"

	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

// PollID identifies a poll. IDs are assigned at creation and never change.
type PollID string

func (id PollID) String() string {
	return string(id)
}

// PollState is the derived lifecycle state of a poll. It is never stored;
// every caller computes it from the schedule and the current time so there is
// no cached state to desynchronize.
type PollState string

const (
	PollStateInPreparation PollState = "in_preparation"
	PollStateOngoing       PollState = "ongoing"
	PollStateFinished      PollState = "finished"
)

// Poll is the aggregate root. All lifecycle mutations flow through it; the
// schedule is the single source of truth for the state machine
// in_preparation -> ongoing -> finished, strictly forward.
type Poll struct {
	id       PollID
	title    string
	ballot   Ballot
	schedule Schedule
	created  time.Time
}

// NewPoll constructs a poll aggregate. It is used both for fresh polls and
// for rehydration from storage, so it enforces every structural invariant.
func NewPoll(id PollID, title string, ballot Ballot, schedule Schedule, created time.Time) (*Poll, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, fmt.Errorf("%w: poll id must not be empty", domainerrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: poll title must not be blank", domainerrors.ErrInvalidArgument)
	}
	if ballot.IsZero() {
		return nil, fmt.Errorf("%w: poll ballot must not be empty", domainerrors.ErrInvalidArgument)
	}
	return &Poll{
		id:       id,
		title:    strings.TrimSpace(title),
		ballot:   ballot,
		schedule: schedule,
		created:  created.UTC(),
	}, nil
}

// State computes the lifecycle state at the given instant.
func (p *Poll) State(now time.Time) PollState {
	if end := p.schedule.End(); end != nil && !end.After(now) {
		return PollStateFinished
	}
	if start := p.schedule.Start(); start == nil || start.After(now) {
		return PollStateInPreparation
	}
	return PollStateOngoing
}

// StartVoting moves the poll from in_preparation to ongoing by stamping the
// schedule start. The schedule is only replaced after the precondition holds.
func (p *Poll) StartVoting(now time.Time) error {
	if p.State(now) != PollStateInPreparation {
		return fmt.Errorf("%w: cannot start voting when poll is not in preparation", domainerrors.ErrInvalidStateTransition)
	}
	schedule, err := p.schedule.WithStart(now)
	if err != nil {
		return err
	}
	p.schedule = schedule
	return nil
}

// EndVoting moves the poll from ongoing to finished by stamping the schedule
// end.
func (p *Poll) EndVoting(now time.Time) error {
	if p.State(now) != PollStateOngoing {
		return fmt.Errorf("%w: cannot finish voting when poll is not ongoing", domainerrors.ErrInvalidStateTransition)
	}
	schedule, err := p.schedule.WithEnd(now)
	if err != nil {
		return err
	}
	p.schedule = schedule
	return nil
}

// CanAcceptVotes reports whether the poll is ongoing at the given instant.
// Pure query, no side effects.
func (p *Poll) CanAcceptVotes(now time.Time) bool {
	return p.State(now) == PollStateOngoing
}

func (p *Poll) ID() PollID {
	return p.id
}

func (p *Poll) Title() string {
	return p.title
}

func (p *Poll) Ballot() Ballot {
	return p.ballot
}

func (p *Poll) Schedule() Schedule {
	return p.schedule
}

func (p *Poll) Created() time.Time {
	return p.created
}
