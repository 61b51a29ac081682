package rdelta_test

import (
	"math"
	"testing"

	"github.com/relativedelta/go-relativedelta/internal/assert"
	"github.com/relativedelta/go-relativedelta/rdelta"
)

func mustBuild(t *testing.T, b rdelta.Builder) rdelta.RelativeDelta {
	t.Helper()
	rd, err := b.Build()
	assert.NoError(t, err)
	return rd
}

func TestBuildNormalization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		builder  rdelta.Builder
		expected rdelta.Builder
	}{
		{
			name:     "twelve months equal one year",
			builder:  rdelta.WithMonths(12),
			expected: rdelta.WithYears(1),
		},
		{
			name:     "sixty nine months",
			builder:  rdelta.WithMonths(69),
			expected: rdelta.WithYears(5).AndMonths(9),
		},
		{
			name:     "negative forty seven months",
			builder:  rdelta.WithMonths(-47),
			expected: rdelta.WithYears(-3).AndMonths(-11),
		},
		{
			name:     "twenty five hours",
			builder:  rdelta.WithHours(25),
			expected: rdelta.WithDays(1).AndHours(1),
		},
		{
			name:     "negative twenty five hours",
			builder:  rdelta.WithHours(-25),
			expected: rdelta.WithDays(-1).AndHours(-1),
		},
		{
			name:     "sixty one seconds",
			builder:  rdelta.WithSeconds(61),
			expected: rdelta.WithMinutes(1).AndSeconds(1),
		},
		{
			name:     "negative sixty one seconds",
			builder:  rdelta.WithSeconds(-61),
			expected: rdelta.WithMinutes(-1).AndSeconds(-1),
		},
		{
			name:     "nanoseconds fold into seconds",
			builder:  rdelta.WithNanoseconds(1_500_000_000),
			expected: rdelta.WithSeconds(1).AndNanoseconds(500_000_000),
		},
		{
			name:     "full cascade",
			builder:  rdelta.WithSeconds(90_061),
			expected: rdelta.WithDays(1).AndHours(1).AndMinutes(1).AndSeconds(1),
		},
		{
			name:     "in-range fields unchanged",
			builder:  rdelta.WithYears(2).AndMonths(-11).AndHours(23),
			expected: rdelta.WithYears(2).AndMonths(-11).AndHours(23),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, mustBuild(t, tt.builder), mustBuild(t, tt.expected))
		})
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()
	rd := mustBuild(t, rdelta.WithMonths(69).AndHours(-25).AndDay(1))
	again := mustBuild(t, rd.Builder())
	assert.Equal(t, rd, again)
}

func TestBuildLastWriteWins(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		mustBuild(t, rdelta.WithMonths(12).AndMonths(6)),
		mustBuild(t, rdelta.WithMonths(6)))
	assert.Equal(t,
		mustBuild(t, rdelta.WithDay(15).AndDay(1)),
		mustBuild(t, rdelta.WithDay(1)))
}

func TestBuildAccessors(t *testing.T) {
	t.Parallel()
	rd := mustBuild(t, rdelta.WithYear(2020).AndYears(1).
		AndMonth(1).AndMonths(3).AndDays(12).
		AndWeekday(rdelta.Monday, 2))

	assert.Equal(t, rd.Years(), int64(1))
	assert.Equal(t, rd.Months(), int64(3))
	assert.Equal(t, rd.Days(), int64(12))
	assert.Equal(t, rd.TotalMonths(), int64(15))

	year, ok := rd.Year()
	assert.Equal(t, ok, true)
	assert.Equal(t, year, 2020)
	month, ok := rd.Month()
	assert.Equal(t, ok, true)
	assert.Equal(t, month, 1)
	if _, ok := rd.Day(); ok {
		t.Fatal("day override must be unset")
	}
	wd, ok := rd.Weekday()
	assert.Equal(t, ok, true)
	assert.Equal(t, wd, rdelta.WeekdayNth{Weekday: rdelta.Monday, Nth: 2})
}

func TestBuildValueSemantics(t *testing.T) {
	t.Parallel()
	base := rdelta.WithYears(1)
	left := base.AndMonths(6)
	right := base.AndDays(3)

	assert.Equal(t, mustBuild(t, left), mustBuild(t, rdelta.WithYears(1).AndMonths(6)))
	assert.Equal(t, mustBuild(t, right), mustBuild(t, rdelta.WithYears(1).AndDays(3)))
	assert.Equal(t, mustBuild(t, base), mustBuild(t, rdelta.WithYears(1)))
}

func TestBuildCombinedSetters(t *testing.T) {
	t.Parallel()
	combined := rdelta.NewBuilder().
		AndDate(rdelta.Ptr(2020), 1, rdelta.Ptr(1), 3, nil, 12).
		AndTime(nil, 2, rdelta.Ptr(30), 0, nil, -5)
	chained := rdelta.WithYear(2020).AndYears(1).
		AndMonth(1).AndMonths(3).AndDays(12).
		AndHours(2).AndMinute(30).AndSeconds(-5)
	assert.Equal(t, mustBuild(t, combined), mustBuild(t, chained))
}

func TestFromFields(t *testing.T) {
	t.Parallel()
	f := rdelta.Fields{
		Years:   1,
		Months:  3,
		Days:    12,
		Year:    rdelta.Ptr(2020),
		Month:   rdelta.Ptr(1),
		Weekday: &rdelta.WeekdayNth{Weekday: rdelta.Friday, Nth: -1},
	}
	rd := mustBuild(t, rdelta.FromFields(f))
	assert.Equal(t, rd.Fields(), f)
}

func TestBuildOverflow(t *testing.T) {
	t.Parallel()
	_, err := rdelta.WithSeconds(math.MaxInt64).AndMinutes(math.MaxInt64).Build()
	assert.ErrorIs(t, err, rdelta.ErrOverflow)
}

func TestBuildInvalidOverrides(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		builder  rdelta.Builder
		expected error
	}{
		{"month thirteen", rdelta.WithMonth(13), rdelta.ErrIllegalArgument},
		{"month zero", rdelta.WithMonth(0), rdelta.ErrIllegalArgument},
		{"day zero", rdelta.WithDay(0), rdelta.ErrIllegalArgument},
		{"hour twenty four", rdelta.WithHour(24), rdelta.ErrIllegalArgument},
		{"minute sixty", rdelta.WithMinute(60), rdelta.ErrIllegalArgument},
		{"negative second", rdelta.WithSecond(-1), rdelta.ErrIllegalArgument},
		{"nanosecond too large", rdelta.WithNanosecond(1_000_000_000), rdelta.ErrIllegalArgument},
		{"zero weekday occurrence", rdelta.WithWeekday(rdelta.Monday, 0), rdelta.ErrInvalidWeekdayOccurrence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestFromFloats(t *testing.T) {
	t.Parallel()
	t.Run("year and a half", func(t *testing.T) {
		b, err := rdelta.FromFloats(1.5, 0, 0, 0, 0, 0, 0)
		assert.NoError(t, err)
		rd := mustBuild(t, b)
		assert.Equal(t, rd.Years(), int64(1))
		assert.Equal(t, rd.Months(), int64(6))
	})

	t.Run("fraction cancels months", func(t *testing.T) {
		b, err := rdelta.FromFloats(1.5, -18, 0, 0, 0, 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, mustBuild(t, b), mustBuild(t, rdelta.NewBuilder()))
	})

	t.Run("mixed sign cascade", func(t *testing.T) {
		b, err := rdelta.FromFloats(-0.42, -15.7, -12.3, -5.32, 3.14, 0.15, 22232)
		assert.NoError(t, err)
		rd := mustBuild(t, b)
		expected := mustBuild(t, rdelta.WithYears(-1).AndMonths(-8).
			AndMonthsFraction(-0.7399999999999984).
			AndDays(-12).AndHours(-12).AndMinutes(-28).AndSeconds(-3).
			AndNanoseconds(-449_977_768))
		assert.Equal(t, rd, expected)
	})

	t.Run("non-finite input", func(t *testing.T) {
		_, err := rdelta.FromFloats(math.NaN(), 0, 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, rdelta.ErrConversion)
		_, err = rdelta.FromFloats(0, math.Inf(1), 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, rdelta.ErrConversion)
	})
}

func TestIsZero(t *testing.T) {
	t.Parallel()
	assert.Equal(t, mustBuild(t, rdelta.NewBuilder()).IsZero(), true)
	assert.Equal(t, mustBuild(t, rdelta.WithDays(1)).IsZero(), false)
	assert.Equal(t, mustBuild(t, rdelta.WithDay(1)).IsZero(), false)
}

func TestString(t *testing.T) {
	t.Parallel()
	rd := mustBuild(t, rdelta.WithYears(1).AndDay(1).AndWeekday(rdelta.Monday, 1))
	assert.Equal(t, rd.String(), "RelativeDelta{years=+1, day=1, weekday=(Mon, 1)}")
	assert.Equal(t, mustBuild(t, rdelta.NewBuilder()).String(), "RelativeDelta{}")
}
