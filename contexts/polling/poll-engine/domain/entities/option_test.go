package entities_test

import (
	"testing"

	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"

	"github.com/stretchr/testify/require"
)

func TestNewOptionTrimsText(t *testing.T) {
	option, err := entities.NewOption("  Pizza  ")
	require.NoError(t, err)
	require.Equal(t, "Pizza", option.Text())
}

func TestNewOptionRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := entities.NewOption(text)
		require.ErrorIs(t, err, domainerrors.ErrInvalidArgument, "text %q", text)
	}
}

func TestOptionsWithSameTextAreEqual(t *testing.T) {
	first, err := entities.NewOption("Sushi")
	require.NoError(t, err)
	second, err := entities.NewOption("  Sushi ")
	require.NoError(t, err)

	require.Equal(t, first, second)

	seen := map[entities.Option]int{first: 1}
	require.Equal(t, 1, seen[second])
}
