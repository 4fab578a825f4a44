package timesheet

// Round applies the rounding policy to a session's raw duration and
// records the result on Minutes. It runs exactly once per session, before
// day bucketing: rounding then splitting keeps day-level sums equal to
// the session total, which summing-then-rounding cannot guarantee.
//
// Zero and negative raw durations pass through as zero; a data error is
// never rounded into payable time.
func Round(sessions []Session, roundingMinutes int) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		s.Minutes = roundMinutes(s.RawMinutes, roundingMinutes)
		out[i] = s
	}
	return out
}

// roundMinutes snaps raw to the nearest increment using round half up.
// increment 0 means no rounding.
func roundMinutes(raw, increment int) int {
	if raw <= 0 {
		return 0
	}
	if increment == 0 {
		return raw
	}
	return (2*raw + increment) / (2 * increment) * increment
}
