package rdelta

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Weekday specifies a day of the week (Monday = 0, ..., Sunday = 6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	shortDayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	longDayNames  = []string{"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday"}
)

// String returns the abbreviated English name of the day.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return shortDayNames[d]
}

// Next returns the day of the week following d.
func (d Weekday) Next() Weekday {
	return (d + 1) % 7
}

// Prev returns the day of the week preceding d.
func (d Weekday) Prev() Weekday {
	return (d + 6) % 7
}

// DaysSince returns the number of days from other to d, counting forward
// within a single week. The result is in the range [0, 6].
func (d Weekday) DaysSince(other Weekday) int {
	return int((d - other + 7) % 7)
}

// NumberFromMonday returns the ISO 8601 weekday number, counting from
// Monday = 1.
func (d Weekday) NumberFromMonday() int {
	return int(d) + 1
}

// ParseWeekday converts a day name to a Weekday. Both the abbreviated and
// the full English names are accepted.
func ParseWeekday(name string) (Weekday, error) {
	for i, short := range shortDayNames {
		if name == short || name == longDayNames[i] {
			return Weekday(i), nil
		}
	}
	return 0, conversionError(fmt.Sprintf("unknown weekday %q", name))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, conversionError(fmt.Sprintf("invalid weekday %d", int(d)))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Weekday) MarshalYAML() (interface{}, error) {
	if d < Monday || d > Sunday {
		return nil, conversionError(fmt.Sprintf("invalid weekday %d", int(d)))
	}
	return d.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Weekday) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(name))
}

// WeekdayNth selects the nth occurrence of a weekday relative to a
// reference date. A positive Nth searches forward (on or after the
// reference), a negative Nth searches backward (on or before). Zero is
// invalid.
type WeekdayNth struct {
	Weekday Weekday `json:"weekday" yaml:"weekday"`
	Nth     int64   `json:"nth" yaml:"nth"`
}

// NthWeekday resolves the nth occurrence of the target weekday counting
// inclusively from dt. With nth = 1 the result is dt itself when dt
// already falls on the target day. Only the date part of dt changes; the
// time of day is left untouched. A zero nth fails with
// ErrInvalidWeekdayOccurrence.
func NthWeekday[T DateTime[T]](dt T, target Weekday, nth int64) (T, error) {
	if nth == 0 {
		var zero T
		return zero, invalidWeekdayOccurrenceError("occurrence count is zero")
	}
	if nth > 0 {
		forward := int64(target.DaysSince(dt.Weekday()))
		return dt.AddDays(forward + 7*(nth-1))
	}
	backward := int64(dt.Weekday().DaysSince(target))
	return dt.AddDays(-(backward + 7*(-nth-1)))
}
