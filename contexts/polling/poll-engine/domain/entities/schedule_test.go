package entities_test

import (
	"testing"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"

	"github.com/stretchr/testify/require"
)

func TestNewScheduleAllowsOpenBounds(t *testing.T) {
	schedule, err := entities.NewSchedule(nil, nil)
	require.NoError(t, err)
	require.Nil(t, schedule.Start())
	require.Nil(t, schedule.End())

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	schedule, err = entities.NewSchedule(&start, nil)
	require.NoError(t, err)
	require.Equal(t, start, *schedule.Start())
	require.Nil(t, schedule.End())
}

func TestNewScheduleRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := entities.NewSchedule(&start, &end)
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestNewScheduleAllowsEqualBounds(t *testing.T) {
	instant := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	schedule, err := entities.NewSchedule(&instant, &instant)
	require.NoError(t, err)
	require.Equal(t, instant, *schedule.Start())
	require.Equal(t, instant, *schedule.End())
}

func TestWithStartRevalidatesAgainstEnd(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	schedule, err := entities.NewSchedule(nil, &end)
	require.NoError(t, err)

	_, err = schedule.WithStart(end.Add(time.Hour))
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	updated, err := schedule.WithStart(end.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, end.Add(-time.Hour), *updated.Start())
	// The original schedule is untouched.
	require.Nil(t, schedule.Start())
}

func TestScheduleAccessorsReturnCopies(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	schedule, err := entities.NewSchedule(&start, nil)
	require.NoError(t, err)

	leaked := schedule.Start()
	*leaked = leaked.Add(48 * time.Hour)

	require.Equal(t, start, *schedule.Start())
}
