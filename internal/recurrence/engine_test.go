package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// 2024-03-04 is a Monday.
var monday = date(2024, time.March, 4)

func baseRequest() Request {
	return Request{
		DayOfWeek: 3, // Wednesday
		StartTime: "10:00",
		EndTime:   "11:00",
		Frequency: FrequencyWeekly,
		StartDate: monday,
	}
}

func TestValidateOrder(t *testing.T) {
	today := monday

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{"valid", func(r *Request) {}, ""},
		{"day of week too high", func(r *Request) { r.DayOfWeek = 7 }, "Day of week must be between 0 (Sunday) and 6 (Saturday)"},
		{"day of week negative", func(r *Request) { r.DayOfWeek = -1 }, "Day of week must be between 0 (Sunday) and 6 (Saturday)"},
		{"malformed start time", func(r *Request) { r.StartTime = "ten" }, "Start and end time must be in HH:MM format"},
		{"malformed end time", func(r *Request) { r.EndTime = "25:99" }, "Start and end time must be in HH:MM format"},
		{"end equals start", func(r *Request) { r.EndTime = r.StartTime }, "End time must be after start time"},
		{"end before start", func(r *Request) { r.StartTime = "11:00"; r.EndTime = "10:00" }, "End time must be after start time"},
		{"bad frequency", func(r *Request) { r.Frequency = "daily" }, "Frequency must be weekly, biweekly or monthly"},
		{"start date in past", func(r *Request) { r.StartDate = monday.AddDate(0, 0, -1) }, "Start date cannot be in the past"},
		{"end date equals start date", func(r *Request) { r.EndDate = datePtr(2024, time.March, 4) }, "End date must be after start date"},
		{"end date before start date", func(r *Request) { r.EndDate = datePtr(2024, time.March, 1) }, "End date must be after start date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			err := req.Validate(today)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateDayOfWeekCheckedFirst(t *testing.T) {
	// Multiple violations: day-of-week wins because it is checked first.
	req := baseRequest()
	req.DayOfWeek = 9
	req.StartTime = "junk"
	req.StartDate = monday.AddDate(0, 0, -30)

	err := req.Validate(monday)
	require.Error(t, err)
	assert.Equal(t, "Day of week must be between 0 (Sunday) and 6 (Saturday)", err.Error())
}

func TestValidateIgnoresTimeOfDayOnStartDate(t *testing.T) {
	// A start date of today with an earlier clock time is still "today".
	req := baseRequest()
	req.StartDate = time.Date(2024, time.March, 4, 0, 30, 0, 0, time.UTC)
	today := time.Date(2024, time.March, 4, 23, 45, 0, 0, time.UTC)
	assert.NoError(t, req.Validate(today))
}

func TestAnchorDate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		dayOfWeek int
		want      time.Time
	}{
		{"already on requested weekday", monday, 1, monday},
		{"two days ahead", monday, 3, date(2024, time.March, 6)},
		{"one day after requested weekday wraps six days", monday, 0, date(2024, time.March, 10)},
		{"saturday from monday", monday, 6, date(2024, time.March, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnchorDate(tt.start, tt.dayOfWeek))
		})
	}
}

func TestGenerateWeekly(t *testing.T) {
	// Spec scenario: Wednesday sessions requested on a Monday.
	req := baseRequest()
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)

	wantDates := []time.Time{
		date(2024, time.March, 6),
		date(2024, time.March, 13),
		date(2024, time.March, 20),
		date(2024, time.March, 27),
	}
	for i, occ := range occs {
		assert.Equal(t, wantDates[i], dateOnly(occ.Start), "occurrence %d", i)
		assert.Equal(t, time.Wednesday, occ.Start.Weekday())
		assert.Equal(t, 10, occ.Start.Hour())
		assert.Equal(t, 11, occ.End.Hour())
		assert.True(t, occ.Start.Before(occ.End))
		assert.False(t, occ.Start.Before(req.StartDate))
	}
}

func TestGenerateWeeklyAnchorOnStartDate(t *testing.T) {
	// Requesting Mondays on a Monday: zero-day advance.
	req := baseRequest()
	req.DayOfWeek = 1
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)
	assert.Equal(t, monday, dateOnly(occs[0].Start))
	for i := 1; i < len(occs); i++ {
		assert.Equal(t, 7*24*time.Hour, occs[i].Start.Sub(occs[i-1].Start))
	}
}

func TestGenerateBiweekly(t *testing.T) {
	req := baseRequest()
	req.Frequency = FrequencyBiweekly
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)
	for i := 1; i < len(occs); i++ {
		assert.Equal(t, 14*24*time.Hour, occs[i].Start.Sub(occs[i-1].Start))
	}
}

func TestGenerateMonthlyKeepsDayOfMonth(t *testing.T) {
	// Anchored on the 6th; every following month also lands on the 6th.
	req := baseRequest()
	req.Frequency = FrequencyMonthly
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)

	wantDates := []time.Time{
		date(2024, time.March, 6),
		date(2024, time.April, 6),
		date(2024, time.May, 6),
		date(2024, time.June, 6),
	}
	for i, occ := range occs {
		assert.Equal(t, wantDates[i], dateOnly(occ.Start))
	}
}

func TestGenerateMonthlyClampsShortMonths(t *testing.T) {
	// Anchored on Jan 31: February clamps to its last day, March recovers
	// the 31st rather than inheriting February's clamp.
	req := Request{
		DayOfWeek: 3, // 2024-01-31 is a Wednesday
		StartTime: "09:00",
		EndTime:   "10:00",
		Frequency: FrequencyMonthly,
		StartDate: date(2024, time.January, 31),
	}
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)

	wantDates := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29), // leap year
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}
	for i, occ := range occs {
		assert.Equal(t, wantDates[i], dateOnly(occ.Start))
	}
}

func TestGenerateMonthlyClampNonLeapYear(t *testing.T) {
	req := Request{
		DayOfWeek: 5, // 2025-01-31 is a Friday
		StartTime: "09:00",
		EndTime:   "10:00",
		Frequency: FrequencyMonthly,
		StartDate: date(2025, time.January, 31),
	}
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 4)
	assert.Equal(t, date(2025, time.February, 28), dateOnly(occs[1].Start))
	assert.Equal(t, date(2025, time.March, 31), dateOnly(occs[2].Start))
}

func TestGenerateStopsAtEndDate(t *testing.T) {
	// Spec scenario: end date reachable after one occurrence.
	req := baseRequest()
	req.EndDate = datePtr(2024, time.March, 10)
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, date(2024, time.March, 6), dateOnly(occs[0].Start))
}

func TestGenerateEndDateInclusive(t *testing.T) {
	// An occurrence landing exactly on the end date is kept.
	req := baseRequest()
	req.EndDate = datePtr(2024, time.March, 13)
	occs, err := Generate(req)
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, date(2024, time.March, 13), dateOnly(occs[1].Start))
}

func TestGenerateEndDateBeforeAnchor(t *testing.T) {
	// End date falls between start date and anchor: nothing to generate.
	req := baseRequest()
	req.EndDate = datePtr(2024, time.March, 5)
	occs, err := Generate(req)
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestGenerateHonorsCap(t *testing.T) {
	req := baseRequest()
	req.Cap = 2
	occs, err := Generate(req)
	require.NoError(t, err)
	assert.Len(t, occs, 2)

	req.Cap = 0 // falls back to the default
	occs, err = Generate(req)
	require.NoError(t, err)
	assert.Len(t, occs, DefaultOccurrenceCap)
}

func TestGenerateInvalidFrequency(t *testing.T) {
	req := baseRequest()
	req.Frequency = "fortnightly"
	_, err := Generate(req)
	assert.Error(t, err)
}

func TestFrequencyLabels(t *testing.T) {
	assert.Equal(t, "Every week", FrequencyWeekly.Label())
	assert.Equal(t, "Every 2 weeks", FrequencyBiweekly.Label())
	assert.Equal(t, "Every month", FrequencyMonthly.Label())
}
