package weather

import (
	"time"

	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
)

// DateRange is an inclusive span of UTC calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(validation.ISODateLayout) + ".." + r.End.Format(validation.ISODateLayout)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// dayOffset counts whole UTC calendar days from today to day
func dayOffset(today, day time.Time) int {
	return int(truncateDay(day).Sub(truncateDay(today)).Hours() / 24)
}

// resolveHistoryRange turns (date, days) into an inclusive range of at most maxDays days.
// Positive days extend forward from date, negative days extend backward.
func resolveHistoryRange(date time.Time, days, maxDays int) (DateRange, error) {
	if days == 0 {
		return DateRange{}, errors.NewValidationError("days must not be zero")
	}
	date = truncateDay(date)
	span := maxDays - 1
	if days > 0 {
		if days-1 < span {
			span = days - 1
		}
		return DateRange{Start: date, End: addDays(date, span)}, nil
	}
	if -days-1 < span {
		span = -days - 1
	}
	return DateRange{Start: addDays(date, -span), End: date}, nil
}

// splitByMonth cuts r at calendar month boundaries
func splitByMonth(r DateRange) []DateRange {
	var chunks []DateRange
	for start := r.Start; !start.After(r.End); {
		end := minDay(monthEnd(start), r.End)
		chunks = append(chunks, DateRange{Start: start, End: end})
		start = addDays(end, 1)
	}
	return chunks
}
