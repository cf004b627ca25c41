package errors

import "errors"

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrPollNotFound           = errors.New("poll not found")
	ErrInvalidStateTransition = errors.New("invalid poll state transition")
	ErrPollNotReadyForVoting  = errors.New("poll is not ready for voting")
	ErrOptionNotInBallot      = errors.New("option does not belong to the ballot")
	ErrInvalidRanking         = errors.New("invalid ranking")
	ErrUnsupportedOperation   = errors.New("unsupported poll operation")
)
