package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(t *testing.T, start, end string, minutes int) Session {
	t.Helper()
	return Session{
		EmployeeID: "emp-1",
		StartedAt:  ts(t, start),
		EndedAt:    ts(t, end),
		RawMinutes: minutes,
		Minutes:    minutes,
	}
}

func TestBucketDays_SingleDay(t *testing.T) {
	t.Parallel()

	days := BucketDays([]Session{
		session(t, "2024-01-02T09:00:00Z", "2024-01-02T17:00:00Z", 480),
	}, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, 480, days[0].Minutes)
	assert.Equal(t, 8.0, days[0].Hours)
	assert.Equal(t, "8:00", days[0].HoursLabel)
}

func TestBucketDays_MidnightSplit(t *testing.T) {
	t.Parallel()

	days := BucketDays([]Session{
		session(t, "2024-01-01T22:00:00Z", "2024-01-02T02:00:00Z", 240),
	}, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, 120, days[0].Minutes)
	assert.Equal(t, 120, days[1].Minutes)
	assert.Equal(t, 240, days[0].Minutes+days[1].Minutes, "split conserves the session total")
}

func TestBucketDays_SplitConservesRoundedTotal(t *testing.T) {
	t.Parallel()

	// 22:10 → 01:25 raw is 195 minutes; rounded at 30 it becomes 210.
	// The split distributes the rounded total, not the raw one, and the
	// fractions must still sum to it exactly.
	s := session(t, "2024-01-01T22:10:00Z", "2024-01-02T01:25:00Z", 195)
	s.Minutes = roundMinutes(s.RawMinutes, 30)
	require.Equal(t, 210, s.Minutes)

	days := BucketDays([]Session{s}, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, 210, days[0].Minutes+days[1].Minutes)
}

func TestBucketDays_TenantTimezoneDecidesTheDay(t *testing.T) {
	t.Parallel()

	// 23:00 UTC is 18:00 in New York: no midnight crossing there.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	days := BucketDays([]Session{
		session(t, "2024-01-01T23:00:00Z", "2024-01-02T03:00:00Z", 240),
	}, loc)

	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), days[0].Date)
	assert.Equal(t, 240, days[0].Minutes)
}

func TestBucketDays_MergesSessionsOnSameDay(t *testing.T) {
	t.Parallel()

	days := BucketDays([]Session{
		session(t, "2024-01-02T09:00:00Z", "2024-01-02T12:00:00Z", 180),
		session(t, "2024-01-02T13:00:00Z", "2024-01-02T17:00:00Z", 240),
	}, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, 420, days[0].Minutes)
}

func TestBucketDays_ZeroMinuteSessionKeepsAnomalyVisible(t *testing.T) {
	t.Parallel()

	s := session(t, "2024-01-02T08:00:00Z", "2024-01-02T08:00:00Z", 0)
	s.Anomalies = []Anomaly{AnomalyUnmatchedOut}

	days := BucketDays([]Session{s}, time.UTC)

	require.Len(t, days, 1)
	assert.Equal(t, 0, days[0].Minutes)
	assert.Contains(t, days[0].Anomalies, AnomalyUnmatchedOut)
}

func TestWeekStart(t *testing.T) {
	t.Parallel()

	// 2024-01-03 is a Wednesday.
	wed := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)

	sunday := WeekStart(wed, 0)
	monday := WeekStart(wed, 1)

	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), sunday)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), monday)
}

func TestWeekStart_OnTheBoundary(t *testing.T) {
	t.Parallel()

	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, WeekStart(monday, 1), "a Monday starts its own Monday week")
	assert.Equal(t, sunday, WeekStart(sunday, 0), "a Sunday starts its own Sunday week")
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), WeekStart(sunday, 1))
}
