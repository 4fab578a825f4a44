package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func punch(t *testing.T, typ PunchType, value string) Punch {
	t.Helper()
	return Punch{EmployeeID: "emp-1", Type: typ, OccurredAt: ts(t, value)}
}

func TestFold_SimpleDay(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 1)
	assert.Equal(t, 480, sessions[0].RawMinutes)
	assert.Empty(t, sessions[0].Anomalies)
	assert.False(t, sessions[0].Open())
}

func TestFold_MultipleSessionsSameDay(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchOut, "2024-01-02T12:00:00Z"),
		punch(t, PunchIn, "2024-01-02T13:00:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 2)
	assert.Equal(t, 180, sessions[0].RawMinutes)
	assert.Equal(t, 240, sessions[1].RawMinutes)
}

func TestFold_DuplicateInIgnored(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchIn, "2024-01-02T09:05:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 1)
	// The original session keeps running; the double punch must not
	// truncate hours.
	assert.Equal(t, ts(t, "2024-01-02T09:00:00Z"), sessions[0].StartedAt)
	assert.Equal(t, 480, sessions[0].RawMinutes)
	assert.Contains(t, sessions[0].Anomalies, AnomalyDuplicateIn)
}

func TestFold_UnmatchedInClampedToRangeEnd(t *testing.T) {
	t.Parallel()

	rangeEnd := ts(t, "2024-01-07T00:00:00Z")
	punches := []Punch{
		punch(t, PunchIn, "2024-01-06T22:00:00Z"),
	}

	sessions := Fold(punches, rangeEnd)

	require.Len(t, sessions, 1)
	assert.Equal(t, rangeEnd, sessions[0].EndedAt)
	assert.Equal(t, 120, sessions[0].RawMinutes)
	assert.Contains(t, sessions[0].Anomalies, AnomalyUnmatchedIn)
	assert.True(t, sessions[0].Open())
}

func TestFold_UnmatchedOutKeptVisible(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchOut, "2024-01-02T08:00:00Z"),
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 2)
	assert.Equal(t, 0, sessions[0].RawMinutes)
	assert.Contains(t, sessions[0].Anomalies, AnomalyUnmatchedOut)
	assert.Equal(t, 480, sessions[1].RawMinutes)
}

func TestFold_NegativeDurationNeverCounts(t *testing.T) {
	t.Parallel()

	// Out-of-order timestamps from clock skew: the pair closes with zero
	// minutes, flagged, never clamped into positive time.
	punches := []Punch{
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		{EmployeeID: "emp-1", Type: PunchOut, OccurredAt: ts(t, "2024-01-02T08:30:00Z")},
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 1)
	assert.Equal(t, 0, sessions[0].RawMinutes)
	assert.Contains(t, sessions[0].Anomalies, AnomalyNegativeDuration)
}

func TestFold_BreakAndLunchAreMarkersOnly(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchBreak, "2024-01-02T10:30:00Z"),
		punch(t, PunchLunch, "2024-01-02T12:00:00Z"),
		punch(t, PunchBreak, "2024-01-02T15:00:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 1)
	assert.Equal(t, 480, sessions[0].RawMinutes, "markers must not deduct time")
	assert.Equal(t, 2, sessions[0].Breaks)
	assert.Equal(t, 1, sessions[0].Lunches)
}

func TestFold_MarkersOutsideSessionDropped(t *testing.T) {
	t.Parallel()

	punches := []Punch{
		punch(t, PunchBreak, "2024-01-02T08:00:00Z"),
		punch(t, PunchIn, "2024-01-02T09:00:00Z"),
		punch(t, PunchOut, "2024-01-02T17:00:00Z"),
	}

	sessions := Fold(punches, ts(t, "2024-01-07T23:59:59Z"))

	require.Len(t, sessions, 1)
	assert.Equal(t, 0, sessions[0].Breaks)
}

func TestFold_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Fold(nil, ts(t, "2024-01-07T23:59:59Z")))
}
