package timesheet

import (
	"sort"
	"time"
)

// Day is a calendar-day bucket in the tenant timezone. Date is local
// midnight of that day.
type Day struct {
	Date       time.Time `json:"date"`
	Minutes    int       `json:"minutes"`
	Breaks     int       `json:"breaks"`
	Lunches    int       `json:"lunches"`
	Anomalies  []Anomaly `json:"anomalies,omitempty"`
	Hours      float64   `json:"hours"`
	HoursLabel string    `json:"hours_label"`
}

// BucketDays distributes each session's rounded minutes into calendar-day
// buckets. A session crossing local midnight is split proportionally to
// its time in each day, but the rounded total is allocated cumulatively so
// the day fractions always sum to the session's Minutes exactly; rounding
// is never re-applied per fraction.
func BucketDays(sessions []Session, loc *time.Location) []Day {
	byDate := map[time.Time]*Day{}

	add := func(date time.Time, minutes int, s Session) {
		d, ok := byDate[date]
		if !ok {
			d = &Day{Date: date}
			byDate[date] = d
		}
		d.Minutes += minutes
		d.Breaks += s.Breaks
		d.Lunches += s.Lunches
		for _, a := range s.Anomalies {
			d.Anomalies = append(d.Anomalies, a)
		}
	}

	for _, s := range sessions {
		start := s.StartedAt.In(loc)
		end := s.EndedAt.In(loc)
		if !end.After(start) || s.Minutes == 0 {
			add(localMidnight(start), s.Minutes, s)
			continue
		}

		total := end.Sub(start)
		allocated := 0
		for cursor := start; cursor.Before(end); {
			dayStart := localMidnight(cursor)
			next := dayStart.AddDate(0, 0, 1)
			sliceEnd := next
			if end.Before(next) {
				sliceEnd = end
			}

			// Cumulative proportional allocation: round the running
			// share, then take the difference. The final slice lands on
			// exactly s.Minutes, so nothing is gained or lost.
			elapsed := sliceEnd.Sub(start)
			cum := int((int64(s.Minutes)*int64(elapsed) + int64(total)/2) / int64(total))
			add(dayStart, cum-allocated, s)
			allocated = cum

			cursor = next
		}
	}

	days := make([]Day, 0, len(byDate))
	for _, d := range byDate {
		d.Hours = hoursDecimal(d.Minutes)
		d.HoursLabel = FormatHours(d.Minutes)
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// WeekStart returns the local midnight that opens the week containing
// date, for weekStartsOn 0 (Sunday) or 1 (Monday). The same day never
// lands in two weeks.
func WeekStart(date time.Time, weekStartsOn int) time.Time {
	midnight := localMidnight(date)
	delta := (int(midnight.Weekday()) - weekStartsOn + 7) % 7
	return midnight.AddDate(0, 0, -delta)
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func hoursDecimal(minutes int) float64 {
	return float64(minutes) / 60
}
