package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Location:                 time.UTC,
		RoundingMinutes:          0,
		WeekStartsOn:             1,
		OvertimeThresholdMinutes: DefaultOvertimeThresholdMinutes,
		OvertimeMultiplier:       DefaultOvertimeMultiplier,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"rounding not in allowed set", func(c *Config) { c.RoundingMinutes = 7 }, ErrInvalidRounding},
		{"rounding rejected not coerced", func(c *Config) { c.RoundingMinutes = 25 }, ErrInvalidRounding},
		{"negative rounding", func(c *Config) { c.RoundingMinutes = -5 }, ErrInvalidRounding},
		{"week start out of range", func(c *Config) { c.WeekStartsOn = 2 }, ErrInvalidWeekStart},
		{"negative threshold", func(c *Config) { c.OvertimeThresholdMinutes = -1 }, ErrInvalidThreshold},
		{"multiplier below one", func(c *Config) { c.OvertimeMultiplier = decimal.NewFromFloat(0.5) }, ErrInvalidMultiplier},
		{"missing location", func(c *Config) { c.Location = nil }, ErrMissingLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCompute_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	_, err := Compute(testConfig(),
		ts(t, "2024-01-07T00:00:00Z"), ts(t, "2024-01-01T00:00:00Z"),
		EmployeeInput{EmployeeID: "emp-1"})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCompute_SimpleEightHourDay(t *testing.T) {
	t.Parallel()

	report, err := Compute(testConfig(),
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"),
		EmployeeInput{
			EmployeeID: "emp-1",
			Name:       "Dana Smith",
			HourlyRate: decimal.NewFromInt(20),
			Punches: []Punch{
				punch(t, PunchIn, "2024-01-02T09:00:00Z"),
				punch(t, PunchOut, "2024-01-02T17:00:00Z"),
			},
		})

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, 480, report.Days[0].Minutes)
	assert.Equal(t, 8.0, report.Days[0].Hours)
	require.Len(t, report.Weeks, 1)
	assert.Equal(t, 480, report.Weeks[0].TotalMinutes)
	assert.Equal(t, 0, report.Weeks[0].OvertimeMinutes)
	assert.Equal(t, "160", report.Weeks[0].RegularPay.String())
	assert.Equal(t, 0, report.AnomalyCount)
}

func TestCompute_OvertimeWeekScenario(t *testing.T) {
	t.Parallel()

	// 41 hours across the week at $20/h with a 40h threshold and 1.5x
	// multiplier: $800 regular, $30 overtime, $830 total.
	in := EmployeeInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(20),
	}
	// Mon-Thu 9h, Fri 5h = 41h = 2460 minutes.
	for day := 1; day <= 4; day++ {
		date := time.Date(2024, 1, day, 8, 0, 0, 0, time.UTC)
		in.Punches = append(in.Punches,
			Punch{EmployeeID: "emp-1", Type: PunchIn, OccurredAt: date},
			Punch{EmployeeID: "emp-1", Type: PunchOut, OccurredAt: date.Add(9 * time.Hour)},
		)
	}
	friday := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	in.Punches = append(in.Punches,
		Punch{EmployeeID: "emp-1", Type: PunchIn, OccurredAt: friday},
		Punch{EmployeeID: "emp-1", Type: PunchOut, OccurredAt: friday.Add(5 * time.Hour)},
	)

	report, err := Compute(testConfig(),
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"), in)

	require.NoError(t, err)
	require.Len(t, report.Weeks, 1)
	week := report.Weeks[0]
	assert.Equal(t, 2460, week.TotalMinutes)
	assert.Equal(t, 2400, week.RegularMinutes)
	assert.Equal(t, 60, week.OvertimeMinutes)
	assert.Equal(t, "800", week.RegularPay.String())
	assert.Equal(t, "30", week.OvertimePay.String())
	assert.Equal(t, "830", week.TotalPay.String())
	assert.Equal(t, "830", report.TotalPay.String())
}

func TestCompute_RegularPlusOvertimeEqualsTotal(t *testing.T) {
	t.Parallel()

	for _, totalHours := range []int{10, 40, 41, 60} {
		in := EmployeeInput{EmployeeID: "emp-1", HourlyRate: decimal.NewFromInt(15)}
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for h := 0; h < totalHours; h += 10 {
			chunk := 10
			if totalHours-h < 10 {
				chunk = totalHours - h
			}
			day := start.AddDate(0, 0, h/10)
			in.Punches = append(in.Punches,
				Punch{EmployeeID: "emp-1", Type: PunchIn, OccurredAt: day.Add(6 * time.Hour)},
				Punch{EmployeeID: "emp-1", Type: PunchOut, OccurredAt: day.Add(time.Duration(6+chunk) * time.Hour)},
			)
		}

		report, err := Compute(testConfig(),
			ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"), in)
		require.NoError(t, err)

		for _, week := range report.Weeks {
			assert.Equal(t, week.TotalMinutes, week.RegularMinutes+week.OvertimeMinutes)
		}
	}
}

func TestCompute_DaySumsEqualSessionSums(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RoundingMinutes = 15

	report, err := Compute(cfg,
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"),
		EmployeeInput{
			EmployeeID: "emp-1",
			Punches: []Punch{
				punch(t, PunchIn, "2024-01-01T22:07:00Z"),
				punch(t, PunchOut, "2024-01-02T02:09:00Z"),
				punch(t, PunchIn, "2024-01-02T09:00:00Z"),
				punch(t, PunchOut, "2024-01-02T17:52:00Z"),
			},
		})
	require.NoError(t, err)

	sessionSum := 0
	for _, s := range report.Sessions {
		sessionSum += s.Minutes
	}
	daySum := 0
	for _, d := range report.Days {
		daySum += d.Minutes
	}
	assert.Equal(t, sessionSum, daySum, "split and rounding must conserve minutes")
	assert.Equal(t, sessionSum, report.TotalMinutes)
}

func TestCompute_UnmatchedInCountedAndFlagged(t *testing.T) {
	t.Parallel()

	report, err := Compute(testConfig(),
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T00:00:00Z"),
		EmployeeInput{
			EmployeeID: "emp-1",
			Punches: []Punch{
				punch(t, PunchIn, "2024-01-06T22:00:00Z"),
			},
		})

	require.NoError(t, err)
	require.Len(t, report.Sessions, 1)
	assert.Contains(t, report.Sessions[0].Anomalies, AnomalyUnmatchedIn)
	assert.Equal(t, 120, report.TotalMinutes, "clamped session still counts")
	assert.Equal(t, 1, report.AnomalyCount)
}

func TestCompute_ClosedOnlyExcludesOpenSessions(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.ClosedOnly = true

	report, err := Compute(cfg,
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T00:00:00Z"),
		EmployeeInput{
			EmployeeID: "emp-1",
			Punches: []Punch{
				punch(t, PunchIn, "2024-01-02T09:00:00Z"),
				punch(t, PunchOut, "2024-01-02T17:00:00Z"),
				punch(t, PunchIn, "2024-01-06T22:00:00Z"),
			},
		})

	require.NoError(t, err)
	assert.Equal(t, 480, report.TotalMinutes, "open session excluded from totals")
	require.Len(t, report.Sessions, 2, "the flagged session stays visible")
	assert.Contains(t, report.Sessions[1].Anomalies, AnomalyUnmatchedIn)
}

func TestCompute_ZeroRateStillProducesReport(t *testing.T) {
	t.Parallel()

	report, err := Compute(testConfig(),
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"),
		EmployeeInput{
			EmployeeID: "emp-1",
			Punches: []Punch{
				punch(t, PunchIn, "2024-01-02T09:00:00Z"),
				punch(t, PunchOut, "2024-01-02T17:00:00Z"),
			},
		})

	require.NoError(t, err)
	assert.Equal(t, 480, report.TotalMinutes)
	assert.True(t, report.TotalPay.IsZero())
	require.Len(t, report.Weeks, 1)
	assert.True(t, report.Weeks[0].RegularPay.IsZero())
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	in := EmployeeInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.RequireFromString("17.25"),
		Punches: []Punch{
			punch(t, PunchIn, "2024-01-01T22:07:00Z"),
			punch(t, PunchOut, "2024-01-02T02:09:00Z"),
			punch(t, PunchIn, "2024-01-02T09:00:00Z"),
			punch(t, PunchIn, "2024-01-02T09:01:00Z"),
			punch(t, PunchOut, "2024-01-02T17:52:00Z"),
		},
	}
	cfg := testConfig()
	cfg.RoundingMinutes = 5

	first, err := Compute(cfg, ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"), in)
	require.NoError(t, err)
	second, err := Compute(cfg, ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-07T23:59:59Z"), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8:00", FormatHours(480))
	assert.Equal(t, "0:45", FormatHours(45))
	assert.Equal(t, "41:05", FormatHours(2465))
	assert.Equal(t, "0:00", FormatHours(0))
}
