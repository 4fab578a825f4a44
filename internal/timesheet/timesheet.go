// Package timesheet converts raw punch events into day, week and pay
// summaries. It is a pure transformation: it performs no I/O and reads no
// clocks, so identical input always yields identical output. Callers fetch
// punches, rates and tenant settings first and hand everything in.
package timesheet

import "time"

type PunchType string

const (
	PunchIn    PunchType = "IN"
	PunchOut   PunchType = "OUT"
	PunchBreak PunchType = "BREAK"
	PunchLunch PunchType = "LUNCH"
)

// Punch is a single timestamped employee action. Punches must be ordered
// ascending by OccurredAt; ties keep their original (insertion) order.
type Punch struct {
	EmployeeID string    `json:"employee_id"`
	Type       PunchType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Anomaly marks a non-fatal data problem on a session. Anomalies never
// abort a report; the caller decides whether to surface them.
type Anomaly string

const (
	// AnomalyUnmatchedIn marks an IN with no closing OUT before the range
	// end. The session is clamped to the range end and still counted.
	AnomalyUnmatchedIn Anomaly = "UNMATCHED_IN"

	// AnomalyUnmatchedOut marks an OUT with no open session. It produces a
	// zero-minute session so the flag stays visible.
	AnomalyUnmatchedOut Anomaly = "UNMATCHED_OUT"

	// AnomalyDuplicateIn marks an IN seen while a session is already open.
	// The duplicate is ignored and the original session keeps running.
	AnomalyDuplicateIn Anomaly = "DUPLICATE_IN"

	// AnomalyNegativeDuration marks an OUT timestamped before its IN
	// (clock skew). The session counts as zero minutes, never clamped
	// into positive time.
	AnomalyNegativeDuration Anomaly = "NEGATIVE_DURATION"
)

// Session is one continuous IN→OUT work interval derived from punches.
type Session struct {
	EmployeeID string    `json:"employee_id"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`

	// RawMinutes is the whole-minute duration from the timestamps.
	// Minutes is RawMinutes after the rounding policy has been applied
	// once; it is what bucketing and pay computation consume.
	RawMinutes int `json:"raw_minutes"`
	Minutes    int `json:"minutes"`

	// BREAK and LUNCH punches inside the interval are status markers
	// only; they do not deduct time. The counts are reported so a
	// deduction policy could be layered on later.
	Breaks  int `json:"breaks"`
	Lunches int `json:"lunches"`

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// Open reports whether the session was closed by the range boundary
// instead of an OUT punch.
func (s Session) Open() bool {
	return s.hasAnomaly(AnomalyUnmatchedIn)
}

func (s Session) hasAnomaly(a Anomaly) bool {
	for _, have := range s.Anomalies {
		if have == a {
			return true
		}
	}
	return false
}
