package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runString(t *testing.T, input string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := Run(strings.NewReader(input), out)
	return out.String(), err
}

func TestRunSampleTranscript(t *testing.T) {
	out, err := runString(t, "k 10 k 20 q 8 31 q 6 9 k 30 k 40 q 15 40\n")
	require.NoError(t, err)
	require.Equal(t, "2 0 3\n", out)
}

func TestRunReversedBounds(t *testing.T) {
	out, err := runString(t, "k 1 k 2 k 6 k 10 q 7 2")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestRunInclusiveBounds(t *testing.T) {
	out, err := runString(t, "k 5 q 5 5 q 4 5 q 5 6")
	require.NoError(t, err)
	require.Equal(t, "1 1 1\n", out)
}

func TestRunDuplicatesIgnored(t *testing.T) {
	out, err := runString(t, "k 7 k 7 k 7 q 0 100")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestRunNoQueriesNoOutput(t *testing.T) {
	out, err := runString(t, "k 1 k 2 k 3")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRunEmptyInput(t *testing.T) {
	out, err := runString(t, "")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := runString(t, "k 1 x 2")
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRunMissingArgument(t *testing.T) {
	_, err := runString(t, "k 1 q 2")
	require.ErrorIs(t, err, ErrBadArgument)

	_, err = runString(t, "k")
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestRunMalformedNumber(t *testing.T) {
	_, err := runString(t, "k banana")
	require.ErrorIs(t, err, ErrBadArgument)

	_, err = runString(t, "q 1 abc")
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestRunNegativeKeys(t *testing.T) {
	out, err := runString(t, "k -5 k -1 k 3 q -6 0")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}
