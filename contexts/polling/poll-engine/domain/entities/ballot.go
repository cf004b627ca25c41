package entities

import (
	"fmt"

	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

// Ballot is the fixed, ordered, duplicate-free set of options a poll's
// voters may rank. A ballot needs at least two options to be rankable.
type Ballot struct {
	options []Option
	index   map[Option]struct{}
}

func NewBallot(options []Option) (Ballot, error) {
	if len(options) < 2 {
		return Ballot{}, fmt.Errorf("%w: ballot must have at least two options", domainerrors.ErrInvalidArgument)
	}
	ordered := make([]Option, 0, len(options))
	index := make(map[Option]struct{}, len(options))
	for _, option := range options {
		if option.IsZero() {
			return Ballot{}, fmt.Errorf("%w: ballot option must not be empty", domainerrors.ErrInvalidArgument)
		}
		if _, exists := index[option]; exists {
			return Ballot{}, fmt.Errorf("%w: duplicate option %q", domainerrors.ErrInvalidArgument, option.Text())
		}
		index[option] = struct{}{}
		ordered = append(ordered, option)
	}
	return Ballot{options: ordered, index: index}, nil
}

// NewBallotFromTexts builds the options and the ballot in one step. Order is
// preserved; validation is identical to NewBallot.
func NewBallotFromTexts(texts []string) (Ballot, error) {
	options := make([]Option, 0, len(texts))
	for _, text := range texts {
		option, err := NewOption(text)
		if err != nil {
			return Ballot{}, err
		}
		options = append(options, option)
	}
	return NewBallot(options)
}

// Options returns the ballot options in their original order. The returned
// slice is a copy; mutating it does not affect the ballot.
func (b Ballot) Options() []Option {
	out := make([]Option, len(b.options))
	copy(out, b.options)
	return out
}

func (b Ballot) Contains(option Option) bool {
	_, ok := b.index[option]
	return ok
}

func (b Ballot) Size() int {
	return len(b.options)
}

// IsZero reports whether the ballot was never constructed through NewBallot.
func (b Ballot) IsZero() bool {
	return len(b.options) == 0
}
