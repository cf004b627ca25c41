package entities

import (
	"fmt"
	"time"

	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

// Schedule is the pair of optional start/end instants that drives the poll
// lifecycle. Both bounds may be absent; when both are set the end must not
// precede the start. Schedules never mutate: WithStart/WithEnd return new
// values and re-validate the invariant.
type Schedule struct {
	start *time.Time
	end   *time.Time
}

func NewSchedule(start, end *time.Time) (Schedule, error) {
	if start != nil && end != nil && end.Before(*start) {
		return Schedule{}, fmt.Errorf("%w: poll end time cannot be before start time", domainerrors.ErrInvalidArgument)
	}
	return Schedule{start: copyInstant(start), end: copyInstant(end)}, nil
}

func (s Schedule) WithStart(start time.Time) (Schedule, error) {
	return NewSchedule(&start, s.end)
}

func (s Schedule) WithEnd(end time.Time) (Schedule, error) {
	return NewSchedule(s.start, &end)
}

func (s Schedule) Start() *time.Time {
	return copyInstant(s.start)
}

func (s Schedule) End() *time.Time {
	return copyInstant(s.end)
}

func copyInstant(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	instant := *t
	return &instant
}
