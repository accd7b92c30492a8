package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckTransitionAllowed(t *testing.T) {
	require.NoError(t, CheckTransition(StatusPending, StatusReviewed))
	require.NoError(t, CheckTransition(StatusPending, StatusRejected))
	require.NoError(t, CheckTransition(StatusReviewed, StatusAccepted))
	require.NoError(t, CheckTransition(StatusReviewed, StatusRejected))
}

func TestCheckTransitionSkippingReviewFails(t *testing.T) {
	err := CheckTransition(StatusPending, StatusAccepted)
	require.Error(t, err)
	require.True(t, IsInvalidTransition(err))
}

func TestTerminalStatesAllowNothing(t *testing.T) {
	for _, terminal := range []ApplicationStatus{StatusAccepted, StatusRejected} {
		require.True(t, terminal.Terminal())
		for _, target := range []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected} {
			if target == terminal {
				continue
			}
			require.Error(t, CheckTransition(terminal, target), "from %s to %s", terminal, target)
		}
	}
}

func TestCheckTransitionSelfLoopFails(t *testing.T) {
	require.Error(t, CheckTransition(StatusPending, StatusPending))
}

func TestParseApplicationStatus(t *testing.T) {
	s, err := ParseApplicationStatus("reviewed")
	require.NoError(t, err)
	require.Equal(t, StatusReviewed, s)

	_, err = ParseApplicationStatus("archived")
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestNextStatusesCopy(t *testing.T) {
	next := StatusPending.NextStatuses()
	require.ElementsMatch(t, []ApplicationStatus{StatusReviewed, StatusRejected}, next)

	// mutating the returned slice must not corrupt the transition table
	next[0] = StatusAccepted
	require.NoError(t, CheckTransition(StatusPending, StatusReviewed))
}
