package entities_test

import (
	"testing"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"

	"github.com/stretchr/testify/require"
)

var pollNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mustPoll(t *testing.T, start, end *time.Time) *entities.Poll {
	t.Helper()
	schedule, err := entities.NewSchedule(start, end)
	require.NoError(t, err)
	poll, err := entities.NewPoll("poll-1", "Lunch", mustBallot(t, "Pizza", "Sushi"), schedule, pollNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return poll
}

func instant(t time.Time) *time.Time {
	return &t
}

func TestNewPollValidation(t *testing.T) {
	ballot := mustBallot(t, "Pizza", "Sushi")

	_, err := entities.NewPoll("", "Lunch", ballot, entities.Schedule{}, pollNow)
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = entities.NewPoll("poll-1", "  ", ballot, entities.Schedule{}, pollNow)
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = entities.NewPoll("poll-1", "Lunch", entities.Ballot{}, entities.Schedule{}, pollNow)
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestPollStateIsDerivedFromSchedule(t *testing.T) {
	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  entities.PollState
	}{
		{"no bounds", nil, nil, entities.PollStateInPreparation},
		{"start in future", instant(pollNow.Add(time.Hour)), nil, entities.PollStateInPreparation},
		{"start in past", instant(pollNow.Add(-time.Hour)), nil, entities.PollStateOngoing},
		{"start exactly now", instant(pollNow), nil, entities.PollStateOngoing},
		{"end in future", instant(pollNow.Add(-time.Hour)), instant(pollNow.Add(time.Hour)), entities.PollStateOngoing},
		{"end in past", instant(pollNow.Add(-2 * time.Hour)), instant(pollNow.Add(-time.Hour)), entities.PollStateFinished},
		{"end exactly now", instant(pollNow.Add(-time.Hour)), instant(pollNow), entities.PollStateFinished},
		{"end without start", nil, instant(pollNow.Add(-time.Hour)), entities.PollStateFinished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			poll := mustPoll(t, tc.start, tc.end)
			require.Equal(t, tc.want, poll.State(pollNow))
		})
	}
}

func TestStartVotingStampsStart(t *testing.T) {
	poll := mustPoll(t, nil, nil)

	require.NoError(t, poll.StartVoting(pollNow))

	require.Equal(t, entities.PollStateOngoing, poll.State(pollNow))
	require.Equal(t, pollNow, *poll.Schedule().Start())
}

func TestStartVotingTwiceFails(t *testing.T) {
	poll := mustPoll(t, nil, nil)
	require.NoError(t, poll.StartVoting(pollNow))

	err := poll.StartVoting(pollNow.Add(time.Minute))
	require.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestEndVotingRequiresOngoingPoll(t *testing.T) {
	poll := mustPoll(t, nil, nil)

	err := poll.EndVoting(pollNow)
	require.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
	// A failed transition must leave the schedule untouched.
	require.Nil(t, poll.Schedule().Start())
	require.Nil(t, poll.Schedule().End())
}

func TestEndVotingFinishesPoll(t *testing.T) {
	poll := mustPoll(t, instant(pollNow.Add(-time.Hour)), nil)

	require.NoError(t, poll.EndVoting(pollNow))

	require.Equal(t, entities.PollStateFinished, poll.State(pollNow))
	require.Equal(t, pollNow, *poll.Schedule().End())
}

func TestFinishedPollAcceptsNoTransitions(t *testing.T) {
	poll := mustPoll(t, instant(pollNow.Add(-2*time.Hour)), instant(pollNow.Add(-time.Hour)))

	require.ErrorIs(t, poll.StartVoting(pollNow), domainerrors.ErrInvalidStateTransition)
	require.ErrorIs(t, poll.EndVoting(pollNow), domainerrors.ErrInvalidStateTransition)
}

func TestCanAcceptVotes(t *testing.T) {
	poll := mustPoll(t, instant(pollNow.Add(-time.Hour)), instant(pollNow.Add(time.Hour)))

	require.True(t, poll.CanAcceptVotes(pollNow))
	require.False(t, poll.CanAcceptVotes(pollNow.Add(-2*time.Hour)))
	require.False(t, poll.CanAcceptVotes(pollNow.Add(2*time.Hour)))
}
