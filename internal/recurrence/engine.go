// Package recurrence expands a member's recurring session request into
// concrete dated occurrences. It is pure calendar arithmetic; persistence is
// the caller's problem.
package recurrence

import (
	"errors"
	"fmt"
	"time"
)

// Frequency is the step size between generated occurrences.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// Label returns the human-readable form shown on the schedule list.
func (f Frequency) Label() string {
	switch f {
	case FrequencyWeekly:
		return "Every week"
	case FrequencyBiweekly:
		return "Every 2 weeks"
	case FrequencyMonthly:
		return "Every month"
	}
	return string(f)
}

// DefaultOccurrenceCap bounds the initial batch of generated occurrences.
const DefaultOccurrenceCap = 4

// TimeLayout is the wire format for times of day.
const TimeLayout = "15:04"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Request describes a validated-or-not recurring session request.
// StartDate and EndDate carry calendar dates only; their time-of-day
// components are ignored.
type Request struct {
	DayOfWeek int    // 0=Sunday .. 6=Saturday
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Frequency Frequency
	StartDate time.Time
	EndDate   *time.Time
	Cap       int // maximum occurrences; DefaultOccurrenceCap when <= 0
}

// Occurrence is one concrete session produced from a Request.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

var errInvalidTime = errors.New("Start and end time must be in HH:MM format")

// Validate checks the request against today's date. Checks run in a fixed
// order and the first failure wins; the returned error text is shown to the
// member as-is.
func (r Request) Validate(today time.Time) error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return errors.New("Day of week must be between 0 (Sunday) and 6 (Saturday)")
	}
	start, err := time.Parse(TimeLayout, r.StartTime)
	if err != nil {
		return errInvalidTime
	}
	end, err := time.Parse(TimeLayout, r.EndTime)
	if err != nil {
		return errInvalidTime
	}
	if !end.After(start) {
		return errors.New("End time must be after start time")
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("Frequency must be weekly, biweekly or monthly")
	}
	if compareDates(r.StartDate, today) < 0 {
		return errors.New("Start date cannot be in the past")
	}
	if r.EndDate != nil && compareDates(*r.EndDate, r.StartDate) <= 0 {
		return errors.New("End date must be after start date")
	}
	return nil
}

// compareDates compares the calendar dates of a and b by their own local
// components, ignoring time of day and timezone offsets. Returns -1, 0 or 1.
func compareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// AnchorDate returns the first date on or after start that falls on the
// requested weekday, advancing 0-6 days and never moving backward.
func AnchorDate(start time.Time, dayOfWeek int) time.Time {
	start = dateOnly(start)
	delta := (dayOfWeek - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, delta)
}

// Generate produces the bounded initial batch of occurrences for a request
// that has already passed Validate. Generation starts at the anchor date and
// steps by the frequency, stopping at the occurrence cap or when a candidate
// date passes the end date.
//
// Monthly stepping keeps the anchor's day-of-month and clamps to the last day
// of shorter months (Jan 31 -> Feb 29 -> Mar 31 in a leap year), so a month
// is never skipped.
func Generate(req Request) ([]Occurrence, error) {
	startTime, err := time.Parse(TimeLayout, req.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}
	endTime, err := time.Parse(TimeLayout, req.EndTime)
	if err != nil {
		return nil, errInvalidTime
	}

	limit := req.Cap
	if limit <= 0 {
		limit = DefaultOccurrenceCap
	}

	anchor := AnchorDate(req.StartDate, req.DayOfWeek)
	anchorDay := anchor.Day()

	var end *time.Time
	if req.EndDate != nil {
		e := dateOnly(*req.EndDate)
		end = &e
	}

	occurrences := make([]Occurrence, 0, limit)
	date := anchor
	for step := 0; len(occurrences) < limit; step++ {
		if end != nil && date.After(*end) {
			break
		}
		occurrences = append(occurrences, Occurrence{
			Start: at(date, startTime),
			End:   at(date, endTime),
		})

		switch req.Frequency {
		case FrequencyWeekly:
			date = date.AddDate(0, 0, 7)
		case FrequencyBiweekly:
			date = date.AddDate(0, 0, 14)
		case FrequencyMonthly:
			date = monthStep(anchor, anchorDay, step+1)
		default:
			return nil, fmt.Errorf("Frequency must be weekly, biweekly or monthly")
		}
	}
	return occurrences, nil
}

// monthStep returns anchor advanced by n calendar months, clamping the
// day-of-month to the target month's length. Each step is computed from the
// anchor so a 31st does not decay permanently after one short month.
func monthStep(anchor time.Time, anchorDay, n int) time.Time {
	y, m, _ := anchor.Date()
	total := int(m) - 1 + n
	year := y + total/12
	month := time.Month(total%12 + 1)

	day := anchorDay
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, anchor.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func at(date, clock time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
