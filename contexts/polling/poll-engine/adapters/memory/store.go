package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"

	"github.com/google/uuid"
)

type pollRecord struct {
	title   string
	options []string
	start   *time.Time
	end     *time.Time
	created time.Time
}

// RecordedVote is the raw shape of a persisted vote, exposed for test
// inspection through Votes().
type RecordedVote struct {
	PollID      entities.PollID
	Rankings    map[string]int
	SubmittedAt time.Time
}

// Store is the in-memory adapter backing tests and local wiring. One store
// implements every port of the module.
type Store struct {
	mu      sync.RWMutex
	polls   map[entities.PollID]pollRecord
	votes   []RecordedVote
	ballots map[entities.PollID][]string
}

func NewStore() *Store {
	return &Store{
		polls:   make(map[entities.PollID]pollRecord),
		ballots: make(map[entities.PollID][]string),
	}
}

func (s *Store) Create(_ context.Context, poll *entities.Poll) (entities.PollID, error) {
	if poll == nil {
		return "", fmt.Errorf("%w: poll must not be nil", domainerrors.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls[poll.ID()] = recordFromPoll(poll)
	return poll.ID(), nil
}

func (s *Store) Update(_ context.Context, poll *entities.Poll) error {
	if poll == nil {
		return fmt.Errorf("%w: poll must not be nil", domainerrors.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.polls[poll.ID()]
	if !ok {
		return fmt.Errorf("%w: %s", domainerrors.ErrPollNotFound, poll.ID())
	}
	// Title and ballot are fixed for the poll's lifetime; only the schedule
	// is replaced.
	schedule := poll.Schedule()
	existing.start = schedule.Start()
	existing.end = schedule.End()
	s.polls[poll.ID()] = existing
	return nil
}

func (s *Store) GetByID(_ context.Context, id entities.PollID) (*entities.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.polls[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrPollNotFound, id)
	}
	return record.toPoll(id)
}

func (s *Store) ExistsByID(_ context.Context, id entities.PollID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.polls[id]
	return ok, nil
}

func (s *Store) SaveVote(_ context.Context, vote entities.Vote) error {
	if vote == nil {
		return fmt.Errorf("%w: vote must not be nil", domainerrors.ErrInvalidArgument)
	}
	rankings := make(map[string]int)
	for option, rank := range vote.Rankings() {
		rankings[option.Text()] = rank
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, RecordedVote{
		PollID:      vote.PollID(),
		Rankings:    rankings,
		SubmittedAt: time.Now().UTC(),
	})
	return nil
}

// Votes returns a copy of every recorded vote, oldest first.
func (s *Store) Votes() []RecordedVote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RecordedVote, 0, len(s.votes))
	for _, vote := range s.votes {
		rankings := make(map[string]int, len(vote.Rankings))
		for text, rank := range vote.Rankings {
			rankings[text] = rank
		}
		out = append(out, RecordedVote{
			PollID:      vote.PollID,
			Rankings:    rankings,
			SubmittedAt: vote.SubmittedAt,
		})
	}
	return out
}

func (s *Store) GetBallot(_ context.Context, id entities.PollID) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	options, ok := s.ballots[id]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), options...), true, nil
}

func (s *Store) PutBallot(_ context.Context, id entities.PollID, options []string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ballots[id] = append([]string(nil), options...)
	return nil
}

func (s *Store) Invalidate(_ context.Context, id entities.PollID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ballots, id)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func recordFromPoll(poll *entities.Poll) pollRecord {
	schedule := poll.Schedule()
	options := poll.Ballot().Options()
	texts := make([]string, 0, len(options))
	for _, option := range options {
		texts = append(texts, option.Text())
	}
	return pollRecord{
		title:   poll.Title(),
		options: texts,
		start:   schedule.Start(),
		end:     schedule.End(),
		created: poll.Created(),
	}
}

func (r pollRecord) toPoll(id entities.PollID) (*entities.Poll, error) {
	ballot, err := entities.NewBallotFromTexts(r.options)
	if err != nil {
		return nil, err
	}
	schedule, err := entities.NewSchedule(r.start, r.end)
	if err != nil {
		return nil, err
	}
	return entities.NewPoll(id, r.title, ballot, schedule, r.created)
}
