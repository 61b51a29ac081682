// Package rdelta computes relative date/time deltas.
//
// A RelativeDelta mixes signed relative offsets (add three months) with
// optional absolute overrides (set day to 1) and an optional weekday
// constraint (the second Tuesday). Applying a delta to a concrete
// date/time produces a new date/time:
//
//	delta, err := rdelta.WithMonths(1).AndDay(1).AndDays(-1).Build()
//	// last day of the month t falls in:
//	last, err := calendar.Add(t, delta)
//
// Deltas are built through a value-semantic Builder; Build normalizes all
// relative fields into canonical ranges, so a delta of 69 months equals a
// delta of 5 years and 9 months. Deltas can be added, subtracted, negated
// and scaled by a real factor. Addition and subtraction combine relative
// fields only, dropping the operands' absolute overrides and weekday
// constraints; scaling preserves them.
//
// The application algorithm is written against the small DateTime
// interface rather than a concrete date/time type, so multiple calendar
// back-ends can be supported. The calendar package provides the adapter
// for the standard library's time.Time.
package rdelta
