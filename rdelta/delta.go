package rdelta

import (
	"fmt"
	"strings"
)

// opt holds an absolute field override that may be unset.
type opt[T any] struct {
	value T
	ok    bool
}

func some[T any](value T) opt[T] {
	return opt[T]{value: value, ok: true}
}

func optFromPtr[T any](p *T) opt[T] {
	if p == nil {
		return opt[T]{}
	}
	return some(*p)
}

// or returns the held value, or fallback when unset.
func (o opt[T]) or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o opt[T]) ptr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// RelativeDelta is an immutable relative date/time delta. It mixes signed
// relative offsets (add three months) with optional absolute overrides
// (set day to 1) and an optional weekday constraint (the second Tuesday).
//
// Values are created through a Builder, which normalizes all relative
// fields into canonical ranges, or by the arithmetic operations Add, Sub,
// Neg and Mul. Two deltas with identical fields compare equal with ==.
// A delta is combined with a concrete date/time via Apply.
type RelativeDelta struct {
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

// Years returns the relative years offset.
func (rd RelativeDelta) Years() int64 { return rd.years }

// Months returns the relative months offset, in the range [-11, 11].
func (rd RelativeDelta) Months() int64 { return rd.months }

// MonthsFraction returns the fractional month remainder left over from
// float-based construction. The remainder cannot be folded into days
// because the length of a relative month is unknown.
func (rd RelativeDelta) MonthsFraction() float64 { return rd.monthsF }

// Days returns the relative days offset.
func (rd RelativeDelta) Days() int64 { return rd.days }

// Hours returns the relative hours offset, in the range [-23, 23].
func (rd RelativeDelta) Hours() int64 { return rd.hours }

// Minutes returns the relative minutes offset, in the range [-59, 59].
func (rd RelativeDelta) Minutes() int64 { return rd.minutes }

// Seconds returns the relative seconds offset, in the range [-59, 59].
func (rd RelativeDelta) Seconds() int64 { return rd.seconds }

// Nanoseconds returns the relative nanoseconds offset, in the range
// (-1e9, 1e9).
func (rd RelativeDelta) Nanoseconds() int64 { return rd.nanoseconds }

// Year returns the absolute year override, if set.
func (rd RelativeDelta) Year() (int, bool) { return rd.year.value, rd.year.ok }

// Month returns the absolute month override, if set.
func (rd RelativeDelta) Month() (int, bool) { return rd.month.value, rd.month.ok }

// Day returns the absolute day override, if set.
func (rd RelativeDelta) Day() (int, bool) { return rd.day.value, rd.day.ok }

// Hour returns the absolute hour override, if set.
func (rd RelativeDelta) Hour() (int, bool) { return rd.hour.value, rd.hour.ok }

// Minute returns the absolute minute override, if set.
func (rd RelativeDelta) Minute() (int, bool) { return rd.minute.value, rd.minute.ok }

// Second returns the absolute second override, if set.
func (rd RelativeDelta) Second() (int, bool) { return rd.second.value, rd.second.ok }

// Nanosecond returns the absolute nanosecond override, if set.
func (rd RelativeDelta) Nanosecond() (int, bool) { return rd.nanosecond.value, rd.nanosecond.ok }

// Weekday returns the weekday constraint, if set.
func (rd RelativeDelta) Weekday() (WeekdayNth, bool) { return rd.weekday.value, rd.weekday.ok }

// TotalMonths returns the relative offset expressed in months,
// years*12 + months.
func (rd RelativeDelta) TotalMonths() int64 {
	return rd.years*12 + rd.months
}

// IsZero reports whether the delta carries no relative offsets, no
// absolute overrides and no weekday constraint. Applying a zero delta
// returns the base date/time unchanged.
func (rd RelativeDelta) IsZero() bool {
	return rd == RelativeDelta{}
}

// Fields is the exploded field set of a RelativeDelta. It serves both as
// the one-call combined constructor input for FromFields and as the
// serialized representation: zero relative offsets and unset absolute
// overrides are omitted from the encoded form.
type Fields struct {
	Years       int64   `json:"years,omitempty" yaml:"years,omitempty"`
	Months      int64   `json:"months,omitempty" yaml:"months,omitempty"`
	MonthsF     float64 `json:"months_f,omitempty" yaml:"months_f,omitempty"`
	Days        int64   `json:"days,omitempty" yaml:"days,omitempty"`
	Hours       int64   `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes     int64   `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds     int64   `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Nanoseconds int64   `json:"nanoseconds,omitempty" yaml:"nanoseconds,omitempty"`

	Year       *int `json:"year,omitempty" yaml:"year,omitempty"`
	Month      *int `json:"month,omitempty" yaml:"month,omitempty"`
	Day        *int `json:"day,omitempty" yaml:"day,omitempty"`
	Hour       *int `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute     *int `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second     *int `json:"second,omitempty" yaml:"second,omitempty"`
	Nanosecond *int `json:"nanosecond,omitempty" yaml:"nanosecond,omitempty"`

	Weekday *WeekdayNth `json:"weekday,omitempty" yaml:"weekday,omitempty"`
}

// Fields returns the delta's exploded field set. The returned pointers
// reference copies of the absolute overrides.
func (rd RelativeDelta) Fields() Fields {
	return Fields{
		Years:       rd.years,
		Months:      rd.months,
		MonthsF:     rd.monthsF,
		Days:        rd.days,
		Hours:       rd.hours,
		Minutes:     rd.minutes,
		Seconds:     rd.seconds,
		Nanoseconds: rd.nanoseconds,
		Year:        rd.year.ptr(),
		Month:       rd.month.ptr(),
		Day:         rd.day.ptr(),
		Hour:        rd.hour.ptr(),
		Minute:      rd.minute.ptr(),
		Second:      rd.second.ptr(),
		Nanosecond:  rd.nanosecond.ptr(),
		Weekday:     rd.weekday.ptr(),
	}
}

// String returns a compact representation listing only the fields that
// deviate from the zero delta.
func (rd RelativeDelta) String() string {
	var parts []string
	relative := []struct {
		name  string
		value int64
	}{
		{"years", rd.years},
		{"months", rd.months},
		{"days", rd.days},
		{"hours", rd.hours},
		{"minutes", rd.minutes},
		{"seconds", rd.seconds},
		{"nanoseconds", rd.nanoseconds},
	}
	for _, f := range relative {
		if f.value != 0 {
			parts = append(parts, fmt.Sprintf("%s=%+d", f.name, f.value))
		}
	}
	if rd.monthsF != 0 {
		parts = append(parts, fmt.Sprintf("months_f=%g", rd.monthsF))
	}
	absolute := []struct {
		name  string
		value opt[int]
	}{
		{"year", rd.year},
		{"month", rd.month},
		{"day", rd.day},
		{"hour", rd.hour},
		{"minute", rd.minute},
		{"second", rd.second},
		{"nanosecond", rd.nanosecond},
	}
	for _, f := range absolute {
		if f.value.ok {
			parts = append(parts, fmt.Sprintf("%s=%d", f.name, f.value.value))
		}
	}
	if rd.weekday.ok {
		parts = append(parts, fmt.Sprintf("weekday=(%s, %d)",
			rd.weekday.value.Weekday, rd.weekday.value.Nth))
	}
	return fmt.Sprintf("RelativeDelta{%s}", strings.Join(parts, ", "))
}
