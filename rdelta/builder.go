package rdelta

import (
	"fmt"
	"math"
)

const nanosPerSecond = 1_000_000_000

// Ptr returns a pointer to value. It is a convenience for populating the
// optional absolute overrides of Fields and the AndDate/AndTime methods.
func Ptr[T any](value T) *T {
	return &value
}

// Builder accumulates field assignments for a RelativeDelta. The zero
// value is ready to use. Methods are value-semantic: each call returns an
// updated copy, so partially built states can be shared and branched
// without aliasing. Setting the same unit twice retains only the last
// write. Build finalizes the accumulated fields into a normalized,
// immutable RelativeDelta.
type Builder struct {
	years       int64
	months      int64
	monthsF     float64
	days        int64
	hours       int64
	minutes     int64
	seconds     int64
	nanoseconds int64

	year       opt[int]
	month      opt[int]
	day        opt[int]
	hour       opt[int]
	minute     opt[int]
	second     opt[int]
	nanosecond opt[int]

	weekday opt[WeekdayNth]
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// Relative offset constructors.

// WithYears starts a builder with a relative years offset.
func WithYears(years int64) Builder { return Builder{years: years} }

// WithMonths starts a builder with a relative months offset.
func WithMonths(months int64) Builder { return Builder{months: months} }

// WithDays starts a builder with a relative days offset.
func WithDays(days int64) Builder { return Builder{days: days} }

// WithHours starts a builder with a relative hours offset.
func WithHours(hours int64) Builder { return Builder{hours: hours} }

// WithMinutes starts a builder with a relative minutes offset.
func WithMinutes(minutes int64) Builder { return Builder{minutes: minutes} }

// WithSeconds starts a builder with a relative seconds offset.
func WithSeconds(seconds int64) Builder { return Builder{seconds: seconds} }

// WithNanoseconds starts a builder with a relative nanoseconds offset.
func WithNanoseconds(nanoseconds int64) Builder { return Builder{nanoseconds: nanoseconds} }

// Absolute override constructors.

// WithYear starts a builder with an absolute year override.
func WithYear(year int) Builder { return Builder{year: some(year)} }

// WithMonth starts a builder with an absolute month override.
func WithMonth(month int) Builder { return Builder{month: some(month)} }

// WithDay starts a builder with an absolute day override.
func WithDay(day int) Builder { return Builder{day: some(day)} }

// WithHour starts a builder with an absolute hour override.
func WithHour(hour int) Builder { return Builder{hour: some(hour)} }

// WithMinute starts a builder with an absolute minute override.
func WithMinute(minute int) Builder { return Builder{minute: some(minute)} }

// WithSecond starts a builder with an absolute second override.
func WithSecond(second int) Builder { return Builder{second: some(second)} }

// WithNanosecond starts a builder with an absolute nanosecond override.
func WithNanosecond(nanosecond int) Builder { return Builder{nanosecond: some(nanosecond)} }

// WithWeekday starts a builder with a weekday constraint.
func WithWeekday(weekday Weekday, nth int64) Builder {
	return Builder{weekday: some(WeekdayNth{Weekday: weekday, Nth: nth})}
}

// FromFields starts a builder pre-populated with the full field set. It is
// equivalent to chaining the individual setters for every non-zero field.
func FromFields(f Fields) Builder {
	return Builder{
		years:       f.Years,
		months:      f.Months,
		monthsF:     f.MonthsF,
		days:        f.Days,
		hours:       f.Hours,
		minutes:     f.Minutes,
		seconds:     f.Seconds,
		nanoseconds: f.Nanoseconds,
		year:        optFromPtr(f.Year),
		month:       optFromPtr(f.Month),
		day:         optFromPtr(f.Day),
		hour:        optFromPtr(f.Hour),
		minute:      optFromPtr(f.Minute),
		second:      optFromPtr(f.Second),
		nanosecond:  optFromPtr(f.Nanosecond),
		weekday:     optFromPtr(f.Weekday),
	}
}

// FromFloats starts a builder from real-valued relative offsets. The
// fractional part of each unit cascades into the next smaller unit
// (1.5 years becomes 1 year and 6 months) before Build runs the integer
// normalization. The fractional month remainder is kept aside as
// MonthsFraction since the length of a relative month is unknown. It
// fails with ErrConversion when an input is not finite or does not fit
// the integer field width.
func FromFloats(years, months, days, hours, minutes, seconds float64, nanoseconds int64) (Builder, error) {
	for _, f := range []float64{years, months, days, hours, minutes, seconds} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Builder{}, conversionError(fmt.Sprintf("non-finite input %v", f))
		}
	}

	yearsInt := math.Trunc(years)

	monthsF := (years - yearsInt) * 12
	monthsTotal := monthsF + months
	monthsInt := math.Trunc(monthsTotal)
	monthsRemainder := monthsTotal - monthsInt

	daysInt := math.Trunc(days)

	hoursF := (days - daysInt) * 24
	hoursTotal := hoursF + hours
	hoursInt := math.Trunc(hoursTotal)

	minutesF := (hoursTotal - hoursInt) * 60
	minutesTotal := minutesF + minutes
	minutesInt := math.Trunc(minutesTotal)

	secondsF := (minutesTotal - minutesInt) * 60
	secondsTotal := secondsF + seconds
	secondsInt := math.Trunc(secondsTotal)

	nanosF := math.Trunc((secondsTotal - secondsInt) * nanosPerSecond)

	b := Builder{monthsF: monthsRemainder}
	var err error
	if b.years, err = floatToInt64(yearsInt, "years"); err != nil {
		return Builder{}, err
	}
	if b.months, err = floatToInt64(monthsInt, "months"); err != nil {
		return Builder{}, err
	}
	if b.days, err = floatToInt64(daysInt, "days"); err != nil {
		return Builder{}, err
	}
	if b.hours, err = floatToInt64(hoursInt, "hours"); err != nil {
		return Builder{}, err
	}
	if b.minutes, err = floatToInt64(minutesInt, "minutes"); err != nil {
		return Builder{}, err
	}
	if b.seconds, err = floatToInt64(secondsInt, "seconds"); err != nil {
		return Builder{}, err
	}
	nanos, err := floatToInt64(nanosF, "nanoseconds")
	if err != nil {
		return Builder{}, err
	}
	if b.nanoseconds, err = addInt64(nanos, nanoseconds, "nanoseconds"); err != nil {
		return Builder{}, conversionError(err.Error())
	}
	return b, nil
}

// Chain setters for relative offsets. Each replaces the previously set
// value for its unit.

// AndYears sets the relative years offset.
func (b Builder) AndYears(years int64) Builder {
	b.years = years
	return b
}

// AndMonths sets the relative months offset.
func (b Builder) AndMonths(months int64) Builder {
	b.months = months
	return b
}

// AndMonthsFraction sets the fractional month remainder.
func (b Builder) AndMonthsFraction(monthsF float64) Builder {
	b.monthsF = monthsF
	return b
}

// AndDays sets the relative days offset.
func (b Builder) AndDays(days int64) Builder {
	b.days = days
	return b
}

// AndHours sets the relative hours offset.
func (b Builder) AndHours(hours int64) Builder {
	b.hours = hours
	return b
}

// AndMinutes sets the relative minutes offset.
func (b Builder) AndMinutes(minutes int64) Builder {
	b.minutes = minutes
	return b
}

// AndSeconds sets the relative seconds offset.
func (b Builder) AndSeconds(seconds int64) Builder {
	b.seconds = seconds
	return b
}

// AndNanoseconds sets the relative nanoseconds offset.
func (b Builder) AndNanoseconds(nanoseconds int64) Builder {
	b.nanoseconds = nanoseconds
	return b
}

// Chain setters for absolute overrides.

// AndYear sets the absolute year override.
func (b Builder) AndYear(year int) Builder {
	b.year = some(year)
	return b
}

// AndMonth sets the absolute month override.
func (b Builder) AndMonth(month int) Builder {
	b.month = some(month)
	return b
}

// AndDay sets the absolute day override.
func (b Builder) AndDay(day int) Builder {
	b.day = some(day)
	return b
}

// AndHour sets the absolute hour override.
func (b Builder) AndHour(hour int) Builder {
	b.hour = some(hour)
	return b
}

// AndMinute sets the absolute minute override.
func (b Builder) AndMinute(minute int) Builder {
	b.minute = some(minute)
	return b
}

// AndSecond sets the absolute second override.
func (b Builder) AndSecond(second int) Builder {
	b.second = some(second)
	return b
}

// AndNanosecond sets the absolute nanosecond override.
func (b Builder) AndNanosecond(nanosecond int) Builder {
	b.nanosecond = some(nanosecond)
	return b
}

// AndWeekday sets the weekday constraint.
func (b Builder) AndWeekday(weekday Weekday, nth int64) Builder {
	b.weekday = some(WeekdayNth{Weekday: weekday, Nth: nth})
	return b
}

// AndDate sets all date fields at once. Nil pointers leave the
// corresponding absolute override unset.
func (b Builder) AndDate(year *int, years int64, month *int, months int64, day *int, days int64) Builder {
	b.year = optFromPtr(year)
	b.years = years
	b.month = optFromPtr(month)
	b.months = months
	b.day = optFromPtr(day)
	b.days = days
	return b
}

// AndTime sets all time fields at once. Nil pointers leave the
// corresponding absolute override unset.
func (b Builder) AndTime(hour *int, hours int64, minute *int, minutes int64, second *int, seconds int64) Builder {
	b.hour = optFromPtr(hour)
	b.hours = hours
	b.minute = optFromPtr(minute)
	b.minutes = minutes
	b.second = optFromPtr(second)
	b.seconds = seconds
	return b
}

// Builder re-opens a finalized delta for further editing. The returned
// builder is pre-populated with the delta's fields and independent of the
// receiver.
func (rd RelativeDelta) Builder() Builder {
	return Builder{
		years:       rd.years,
		months:      rd.months,
		monthsF:     rd.monthsF,
		days:        rd.days,
		hours:       rd.hours,
		minutes:     rd.minutes,
		seconds:     rd.seconds,
		nanoseconds: rd.nanoseconds,
		year:        rd.year,
		month:       rd.month,
		day:         rd.day,
		hour:        rd.hour,
		minute:      rd.minute,
		second:      rd.second,
		nanosecond:  rd.nanosecond,
		weekday:     rd.weekday,
	}
}

// Build finalizes the accumulated fields into an immutable RelativeDelta.
// Relative fields are normalized bottom-up: nanoseconds fold into seconds,
// seconds into minutes, minutes into hours, hours into days and months
// into years, using truncating division with the remainder keeping the
// dividend's sign. Absolute overrides and the weekday constraint pass
// through unchanged. It fails with ErrOverflow when a carry exceeds the
// integer field width, with ErrIllegalArgument when an absolute override
// is outside its unit's valid range, and with
// ErrInvalidWeekdayOccurrence when a weekday constraint carries a zero
// occurrence count.
func (b Builder) Build() (RelativeDelta, error) {
	if err := b.validateOverrides(); err != nil {
		return RelativeDelta{}, err
	}
	rd := RelativeDelta{
		years:       b.years,
		months:      b.months,
		monthsF:     b.monthsF,
		days:        b.days,
		hours:       b.hours,
		minutes:     b.minutes,
		seconds:     b.seconds,
		nanoseconds: b.nanoseconds,
		year:        b.year,
		month:       b.month,
		day:         b.day,
		hour:        b.hour,
		minute:      b.minute,
		second:      b.second,
		nanosecond:  b.nanosecond,
		weekday:     b.weekday,
	}
	if err := rd.normalize(); err != nil {
		return RelativeDelta{}, err
	}
	return rd, nil
}

func (b Builder) validateOverrides() error {
	checks := []struct {
		name     string
		value    opt[int]
		min, max int
	}{
		{"month", b.month, 1, 12},
		{"day", b.day, 1, 31},
		{"hour", b.hour, 0, 23},
		{"minute", b.minute, 0, 59},
		{"second", b.second, 0, 59},
		{"nanosecond", b.nanosecond, 0, nanosPerSecond - 1},
	}
	for _, c := range checks {
		if c.value.ok && (c.value.value < c.min || c.value.value > c.max) {
			return illegalArgumentError(fmt.Sprintf("%s %d out of range [%d, %d]",
				c.name, c.value.value, c.min, c.max))
		}
	}
	if b.weekday.ok && b.weekday.value.Nth == 0 {
		return invalidWeekdayOccurrenceError("occurrence count is zero")
	}
	return nil
}

// normalize folds out-of-range relative fields into their parent units,
// smallest to largest.
func (rd *RelativeDelta) normalize() error {
	var err error
	if rd.seconds, rd.nanoseconds, err = carry(rd.seconds, rd.nanoseconds, nanosPerSecond, "seconds"); err != nil {
		return err
	}
	if rd.minutes, rd.seconds, err = carry(rd.minutes, rd.seconds, 60, "minutes"); err != nil {
		return err
	}
	if rd.hours, rd.minutes, err = carry(rd.hours, rd.minutes, 60, "hours"); err != nil {
		return err
	}
	if rd.days, rd.hours, err = carry(rd.days, rd.hours, 24, "days"); err != nil {
		return err
	}
	if rd.years, rd.months, err = carry(rd.years, rd.months, 12, "years"); err != nil {
		return err
	}
	return nil
}

// carry folds the part of child exceeding unit into parent. The quotient
// truncates toward zero and the remainder keeps child's sign.
func carry(parent, child, unit int64, parentName string) (int64, int64, error) {
	if child > -unit && child < unit {
		return parent, child, nil
	}
	parent, err := addInt64(parent, child/unit, parentName)
	if err != nil {
		return 0, 0, err
	}
	return parent, child % unit, nil
}

func addInt64(a, b int64, name string) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, overflowError(fmt.Sprintf("%s %d + %d", name, a, b))
	}
	return sum, nil
}

func floatToInt64(f float64, name string) (int64, error) {
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, conversionError(fmt.Sprintf("%s %g does not fit int64", name, f))
	}
	return int64(f), nil
}
