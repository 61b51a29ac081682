package rdelta

import "fmt"

// Add returns the sum of the two deltas: each relative field of the result
// is the sum of the corresponding operand fields, re-normalized into
// canonical ranges. Absolute overrides and weekday constraints of both
// operands are dropped; the combination is deliberately lossy since two
// conflicting overrides have no meaningful merge. It fails with
// ErrOverflow when a sum exceeds the integer field width.
func (rd RelativeDelta) Add(other RelativeDelta) (RelativeDelta, error) {
	b := Builder{}
	var err error
	if b.years, err = addInt64(rd.years, other.years, "years"); err != nil {
		return RelativeDelta{}, err
	}
	if b.months, err = addInt64(rd.months, other.months, "months"); err != nil {
		return RelativeDelta{}, err
	}
	if b.days, err = addInt64(rd.days, other.days, "days"); err != nil {
		return RelativeDelta{}, err
	}
	if b.hours, err = addInt64(rd.hours, other.hours, "hours"); err != nil {
		return RelativeDelta{}, err
	}
	if b.minutes, err = addInt64(rd.minutes, other.minutes, "minutes"); err != nil {
		return RelativeDelta{}, err
	}
	if b.seconds, err = addInt64(rd.seconds, other.seconds, "seconds"); err != nil {
		return RelativeDelta{}, err
	}
	if b.nanoseconds, err = addInt64(rd.nanoseconds, other.nanoseconds, "nanoseconds"); err != nil {
		return RelativeDelta{}, err
	}
	return b.Build()
}

// Sub returns the difference of the two deltas, equivalent to
// rd.Add(other.Neg()). Like Add, it drops absolute overrides and weekday
// constraints of both operands.
func (rd RelativeDelta) Sub(other RelativeDelta) (RelativeDelta, error) {
	return rd.Add(other.Neg())
}

// Neg returns the delta with every relative field sign-flipped. Absolute
// overrides and the weekday constraint are dropped. No re-normalization is
// needed since field magnitudes are unchanged.
func (rd RelativeDelta) Neg() RelativeDelta {
	return RelativeDelta{
		years:       -rd.years,
		months:      -rd.months,
		monthsF:     -rd.monthsF,
		days:        -rd.days,
		hours:       -rd.hours,
		minutes:     -rd.minutes,
		seconds:     -rd.seconds,
		nanoseconds: -rd.nanoseconds,
	}
}

// Mul scales every relative field by factor, cascading fractional results
// into smaller units the same way float-based construction does. Unlike
// Add and Sub, absolute overrides and the weekday constraint are carried
// through unchanged: scaling has a single operand and nothing to merge.
// It fails with ErrConversion for a non-finite factor and with ErrOverflow
// when a scaled field exceeds the integer field width.
func (rd RelativeDelta) Mul(factor float64) (RelativeDelta, error) {
	b, err := FromFloats(
		float64(rd.years)*factor,
		float64(rd.months)*factor,
		float64(rd.days)*factor,
		float64(rd.hours)*factor,
		float64(rd.minutes)*factor,
		float64(rd.seconds)*factor,
		0,
	)
	if err != nil {
		return RelativeDelta{}, err
	}
	scaledNanos := float64(rd.nanoseconds) * factor
	nanos, err := floatToInt64(scaledNanos, "nanoseconds")
	if err != nil {
		return RelativeDelta{}, err
	}
	if b.nanoseconds, err = addInt64(b.nanoseconds, nanos, "nanoseconds"); err != nil {
		return RelativeDelta{}, fmt.Errorf("scale by %g: %w", factor, err)
	}
	b.year = rd.year
	b.month = rd.month
	b.day = rd.day
	b.hour = rd.hour
	b.minute = rd.minute
	b.second = rd.second
	b.nanosecond = rd.nanosecond
	b.weekday = rd.weekday
	return b.Build()
}
