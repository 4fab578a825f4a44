package timesheet

import "time"

// Fold pairs ordered punches for a single employee into work sessions.
// It is a local reduce over the event list: no state survives the call,
// so employees can be folded independently and concurrently.
//
// Pairing rules:
//   - IN with no open session starts one.
//   - OUT closes the open session. An OUT timestamped before its IN
//     yields a zero-minute session flagged NEGATIVE_DURATION.
//   - A second IN while a session is open is ignored and flagged
//     DUPLICATE_IN on the open session; double punches must not truncate
//     hours.
//   - An OUT with no open session yields a zero-minute session flagged
//     UNMATCHED_OUT so the stray punch stays visible.
//   - BREAK and LUNCH never open or close a session; they increment the
//     open session's marker counts and are otherwise dropped.
//   - A session still open at rangeEnd is clamped to rangeEnd and
//     flagged UNMATCHED_IN.
func Fold(punches []Punch, rangeEnd time.Time) []Session {
	var (
		sessions []Session
		open     *Session
	)

	for _, p := range punches {
		switch p.Type {
		case PunchIn:
			if open != nil {
				open.Anomalies = append(open.Anomalies, AnomalyDuplicateIn)
				continue
			}
			open = &Session{
				EmployeeID: p.EmployeeID,
				StartedAt:  p.OccurredAt,
			}

		case PunchOut:
			if open == nil {
				sessions = append(sessions, Session{
					EmployeeID: p.EmployeeID,
					StartedAt:  p.OccurredAt,
					EndedAt:    p.OccurredAt,
					Anomalies:  []Anomaly{AnomalyUnmatchedOut},
				})
				continue
			}
			open.EndedAt = p.OccurredAt
			if p.OccurredAt.Before(open.StartedAt) {
				open.Anomalies = append(open.Anomalies, AnomalyNegativeDuration)
			} else {
				open.RawMinutes = wholeMinutes(open.StartedAt, p.OccurredAt)
			}
			sessions = append(sessions, *open)
			open = nil

		case PunchBreak:
			if open != nil {
				open.Breaks++
			}

		case PunchLunch:
			if open != nil {
				open.Lunches++
			}
		}
	}

	if open != nil {
		open.EndedAt = rangeEnd
		open.Anomalies = append(open.Anomalies, AnomalyUnmatchedIn)
		if rangeEnd.After(open.StartedAt) {
			open.RawMinutes = wholeMinutes(open.StartedAt, rangeEnd)
		}
		sessions = append(sessions, *open)
	}

	return sessions
}

func wholeMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
