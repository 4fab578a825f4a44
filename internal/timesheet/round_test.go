package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       int
		increment int
		want      int
	}{
		{"no rounding leaves raw untouched", 52, 0, 52},
		{"below midpoint rounds down", 52, 15, 45},
		{"above midpoint rounds up", 53, 15, 60},
		{"exact midpoint rounds half up", 45, 30, 60},
		{"exact multiple unchanged", 60, 15, 60},
		{"five minute increment", 52, 5, 50},
		{"ten minute increment", 52, 10, 50},
		{"twenty minute midpoint rounds up", 50, 20, 60},
		{"thirty minute increment", 52, 30, 60},
		{"short stub rounds to zero", 7, 15, 0},
		{"midpoint of first bucket rounds up", 8, 15, 15},
		{"zero stays zero", 0, 15, 0},
		{"negative stays zero", -30, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, roundMinutes(tt.raw, tt.increment))
		})
	}
}

func TestRound_AppliedOncePerSession(t *testing.T) {
	t.Parallel()

	sessions := []Session{
		{RawMinutes: 52},
		{RawMinutes: 0, Anomalies: []Anomaly{AnomalyNegativeDuration}},
	}

	rounded := Round(sessions, 15)

	assert.Equal(t, 45, rounded[0].Minutes)
	assert.Equal(t, 52, rounded[0].RawMinutes, "raw duration is preserved")
	assert.Equal(t, 0, rounded[1].Minutes, "data errors never round into payable time")
}
