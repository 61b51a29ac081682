// Package calendar provides date/time back-ends for the rdelta core.
//
// Time adapts the standard library's time.Time to the rdelta.DateTime
// interface. The package-level Add and Sub functions apply a delta to a
// time.Time directly.
package calendar

import (
	"fmt"
	"time"

	"github.com/relativedelta/go-relativedelta/rdelta"
)

// Representable year range of the adapter. Results outside this range fail
// with rdelta.ErrDateOutOfRange.
const (
	MinYear = -999_999
	MaxYear = 999_999
)

// maxAddDays bounds a single day shift so the computation cannot wrap
// before the year range check runs.
const maxAddDays = int64(MaxYear-MinYear+1) * 366

// Time adapts time.Time to the rdelta.DateTime interface. The zero value
// is the zero time.Time.
type Time struct {
	t time.Time
}

var _ rdelta.DateTime[Time] = Time{}

// NewTime returns a Time wrapping t.
func NewTime(t time.Time) Time {
	return Time{t: t}
}

// Time returns the wrapped time.Time.
func (d Time) Time() time.Time {
	return d.t
}

// Date returns the calendar date, with month in [1, 12].
func (d Time) Date() (year, month, day int) {
	y, m, dd := d.t.Date()
	return y, int(m), dd
}

// Clock returns the time of day.
func (d Time) Clock() (hour, minute, second int) {
	return d.t.Clock()
}

// Nanosecond returns the sub-second offset.
func (d Time) Nanosecond() int {
	return d.t.Nanosecond()
}

// Weekday returns the day of the week.
func (d Time) Weekday() rdelta.Weekday {
	return fromTimeWeekday(d.t.Weekday())
}

// DaysInMonth returns the number of days in the given month of the given
// year.
func (d Time) DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WithDate returns a copy with the calendar date replaced and the time of
// day kept.
func (d Time) WithDate(year, month, day int) (Time, error) {
	hour, minute, second := d.t.Clock()
	result := time.Date(year, time.Month(month), day, hour, minute, second,
		d.t.Nanosecond(), d.t.Location())
	ry, rm, rd := result.Date()
	if ry != year || int(rm) != month || rd != day {
		return Time{}, outOfRangeError(fmt.Sprintf("invalid date %04d-%02d-%02d", year, month, day))
	}
	return checkRange(result)
}

// WithClock returns a copy with the time of day replaced and the calendar
// date kept.
func (d Time) WithClock(hour, minute, second, nanosecond int) (Time, error) {
	year, month, day := d.t.Date()
	result := time.Date(year, month, day, hour, minute, second, nanosecond,
		d.t.Location())
	rh, rm, rs := result.Clock()
	if rh != hour || rm != minute || rs != second || result.Nanosecond() != nanosecond {
		return Time{}, outOfRangeError(fmt.Sprintf("invalid time %02d:%02d:%02d.%09d",
			hour, minute, second, nanosecond))
	}
	return checkRange(result)
}

// AddDays returns a copy shifted by the given number of days, carrying
// across month and year boundaries.
func (d Time) AddDays(days int64) (Time, error) {
	if days < -maxAddDays || days > maxAddDays {
		return Time{}, outOfRangeError(fmt.Sprintf("day shift %d", days))
	}
	return checkRange(d.t.AddDate(0, 0, int(days)))
}

// AddTime returns a copy shifted by the given time offsets, carrying
// across day, month and year boundaries.
func (d Time) AddTime(hours, minutes, seconds, nanoseconds int64) (Time, error) {
	total := nanoseconds
	for _, part := range []struct {
		value int64
		scale int64
	}{
		{hours, int64(time.Hour)},
		{minutes, int64(time.Minute)},
		{seconds, int64(time.Second)},
	} {
		scaled, ok := mulInt64(part.value, part.scale)
		if !ok {
			return Time{}, outOfRangeError(fmt.Sprintf("time shift %dh%dm%ds", hours, minutes, seconds))
		}
		if total, ok = addInt64(total, scaled); !ok {
			return Time{}, outOfRangeError(fmt.Sprintf("time shift %dh%dm%ds", hours, minutes, seconds))
		}
	}
	return checkRange(d.t.Add(time.Duration(total)))
}

// Add applies a delta to t and returns the resulting time.
func Add(t time.Time, delta rdelta.RelativeDelta) (time.Time, error) {
	result, err := rdelta.Apply(delta, NewTime(t))
	if err != nil {
		return time.Time{}, err
	}
	return result.Time(), nil
}

// Sub applies the negated delta to t and returns the resulting time.
func Sub(t time.Time, delta rdelta.RelativeDelta) (time.Time, error) {
	return Add(t, delta.Neg())
}

// FromDelta converts a delta carrying absolute year, month and day
// overrides into a concrete time in the given location. Missing time-of-day
// overrides default to zero. It fails with an error unwrapping to
// rdelta.ErrConversion when a required override is missing or the
// overrides do not name a valid date.
func FromDelta(delta rdelta.RelativeDelta, loc *time.Location) (time.Time, error) {
	year, ok := delta.Year()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing absolute year", rdelta.ErrConversion)
	}
	month, ok := delta.Month()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing absolute month", rdelta.ErrConversion)
	}
	day, ok := delta.Day()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing absolute day", rdelta.ErrConversion)
	}
	hour, _ := delta.Hour()
	minute, _ := delta.Minute()
	second, _ := delta.Second()
	nanosecond, _ := delta.Nanosecond()

	result := time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, loc)
	ry, rm, rd := result.Date()
	if ry != year || int(rm) != month || rd != day {
		return time.Time{}, fmt.Errorf("%w: invalid date %04d-%02d-%02d",
			rdelta.ErrConversion, year, month, day)
	}
	return result, nil
}

// fromTimeWeekday converts the standard library's Sunday-based weekday to
// the Monday-based rdelta.Weekday.
func fromTimeWeekday(wd time.Weekday) rdelta.Weekday {
	return rdelta.Weekday((int(wd) + 6) % 7)
}

func checkRange(t time.Time) (Time, error) {
	if year := t.Year(); year < MinYear || year > MaxYear {
		return Time{}, outOfRangeError(fmt.Sprintf("year %d", year))
	}
	return Time{t: t}, nil
}

// outOfRangeError returns a date out of range error with a custom error
// message, which unwraps to rdelta.ErrDateOutOfRange.
func outOfRangeError(message string) error {
	return fmt.Errorf("%w: %s", rdelta.ErrDateOutOfRange, message)
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}
