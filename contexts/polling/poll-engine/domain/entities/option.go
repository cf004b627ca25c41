package entities

import (
	"fmt"
	"strings"

	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

// Option is a single named choice on a ballot. Options are value objects:
// two options with the same normalized text are the same option, so Option
// is comparable and usable as a map key.
type Option struct {
	text string
}

func NewOption(text string) (Option, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Option{}, fmt.Errorf("%w: option text must not be blank", domainerrors.ErrInvalidArgument)
	}
	return Option{text: trimmed}, nil
}

func (o Option) Text() string {
	return o.text
}

func (o Option) String() string {
	return o.text
}

// IsZero reports whether the option is the uninitialized zero value. A zero
// Option can only come from a struct literal, never from NewOption.
func (o Option) IsZero() bool {
	return o.text == ""
}
