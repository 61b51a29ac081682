package rdelta

import "fmt"

// DateTime is the calendar collaborator consumed by Apply. It abstracts a
// concrete date/time value so multiple calendar back-ends can share the
// same application logic; the calendar package ships an adapter for the
// standard library's time.Time.
//
// Implementations are immutable values: mutating methods return a new
// instance. AddDays and AddTime must be calendar-aware, carrying across
// month and year boundaries, and fail with an error unwrapping to
// ErrDateOutOfRange when the result leaves the representable range.
type DateTime[T any] interface {
	// Date returns the calendar date, with month in [1, 12].
	Date() (year, month, day int)
	// Clock returns the time of day.
	Clock() (hour, minute, second int)
	// Nanosecond returns the sub-second offset.
	Nanosecond() int
	// Weekday returns the day of the week.
	Weekday() Weekday
	// DaysInMonth returns the number of days in the given month of the
	// given year.
	DaysInMonth(year, month int) int
	// WithDate returns a copy with the calendar date replaced and the
	// time of day kept.
	WithDate(year, month, day int) (T, error)
	// WithClock returns a copy with the time of day replaced and the
	// calendar date kept.
	WithClock(hour, minute, second, nanosecond int) (T, error)
	// AddDays returns a copy shifted by the given number of days.
	AddDays(days int64) (T, error)
	// AddTime returns a copy shifted by the given time offsets.
	AddTime(hours, minutes, seconds, nanoseconds int64) (T, error)
}

// Apply combines a delta with a base date/time and returns the resulting
// date/time. Fields apply in order: absolute overrides for year and month
// first, then the relative years and months offsets with twelve-month
// wraparound into the year, then the absolute day override clamped to the
// length of the resulting month, then the relative days offset, then the
// time-of-day overrides and offsets, and finally the weekday constraint
// via NthWeekday.
//
// An absolute day beyond the month's length is silently clamped, never an
// error. Subtraction of a delta from a date is Apply(delta.Neg(), base).
func Apply[T DateTime[T]](delta RelativeDelta, base T) (T, error) {
	var zero T
	baseYear, baseMonth, baseDay := base.Date()

	year, err := addInt64(int64(delta.year.or(baseYear)), delta.years, "year")
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDateOutOfRange, err)
	}

	// Twelve-month wraparound; month is kept in [1, 12] with the excess
	// carried into the year.
	month := int64(delta.month.or(baseMonth)) + delta.months
	extraYears := month / 12
	month %= 12
	if month <= 0 {
		extraYears--
		month += 12
	}
	if year, err = addInt64(year, extraYears, "year"); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDateOutOfRange, err)
	}

	day := delta.day.or(baseDay)
	if maxDay := base.DaysInMonth(int(year), int(month)); day > maxDay {
		day = maxDay
	}

	result, err := base.WithDate(int(year), int(month), day)
	if err != nil {
		return zero, err
	}
	if result, err = result.AddDays(delta.days); err != nil {
		return zero, err
	}

	hour, minute, second := result.Clock()
	result, err = result.WithClock(
		delta.hour.or(hour),
		delta.minute.or(minute),
		delta.second.or(second),
		delta.nanosecond.or(result.Nanosecond()),
	)
	if err != nil {
		return zero, err
	}
	if result, err = result.AddTime(delta.hours, delta.minutes, delta.seconds, delta.nanoseconds); err != nil {
		return zero, err
	}

	if wd, ok := delta.weekday.value, delta.weekday.ok; ok {
		return NthWeekday(result, wd.Weekday, wd.Nth)
	}
	return result, nil
}
