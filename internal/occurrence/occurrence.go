// Package occurrence models recurrence rates such as "twice per month" and
// expands them into concrete dates within a year.
package occurrence

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/nibzard/greenthumb/internal/caldate"
)

var (
	// ErrInvalidOccurrence is returned when occurrence text cannot be parsed.
	ErrInvalidOccurrence = errors.New("invalid occurrence")
	// ErrUnsupportedWindow is returned for window values outside Week, Month and Year.
	ErrUnsupportedWindow = errors.New("unsupported occurrence window")
)

// Window is the period an occurrence count applies to.
type Window int

const (
	Week Window = iota + 1
	Month
	Year
)

// Code returns the short serialized code of the window.
func (w Window) Code() string {
	switch w {
	case Week:
		return "w"
	case Month:
		return "m"
	case Year:
		return "y"
	}
	return ""
}

// String returns the window name.
func (w Window) String() string {
	switch w {
	case Week:
		return "Week"
	case Month:
		return "Month"
	case Year:
		return "Year"
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// Valid reports whether w is one of the three windows.
func (w Window) Valid() bool {
	return w >= Week && w <= Year
}

// WindowFromCode returns the window for a serialized code.
func WindowFromCode(code string) (Window, error) {
	switch code {
	case "w":
		return Week, nil
	case "m":
		return Month, nil
	case "y":
		return Year, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedWindow, code)
}

// MaxTimes is the largest accepted count.
const MaxTimes = 999

// Occurrence is a count of repetitions per window. The zero value means
// "not set"; parsed occurrences always have Times >= 1.
type Occurrence struct {
	Times  int
	Window Window
}

var pattern = regexp.MustCompile(`^\s*(\d+)\s*/\s*([a-zA-Z]+)\s*$`)

// Parse parses "<times>/<w|m|y>". Whitespace around the count, the slash
// and the code is ignored.
func Parse(text string) (Occurrence, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Occurrence{}, fmt.Errorf("%w %q: expected <times>/<w|m|y>", ErrInvalidOccurrence, text)
	}
	times, err := strconv.Atoi(m[1])
	if err != nil {
		return Occurrence{}, fmt.Errorf("%w %q: %v", ErrInvalidOccurrence, text, err)
	}
	if times < 1 {
		return Occurrence{}, fmt.Errorf("%w %q: times must be at least 1", ErrInvalidOccurrence, text)
	}
	if times > MaxTimes {
		return Occurrence{}, fmt.Errorf("%w %q: times must be at most %d", ErrInvalidOccurrence, text, MaxTimes)
	}
	window, err := WindowFromCode(m[2])
	if err != nil {
		return Occurrence{}, fmt.Errorf("%w %q: %v", ErrInvalidOccurrence, text, err)
	}
	return Occurrence{Times: times, Window: window}, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// literals.
func MustParse(text string) Occurrence {
	o, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return o
}

// IsZero reports whether the occurrence is unset.
func (o Occurrence) IsZero() bool {
	return o == Occurrence{}
}

// String returns the normalized "<times>/<code>" form.
func (o Occurrence) String() string {
	if o.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%s", o.Times, o.Window.Code())
}

// MarshalText implements encoding.TextMarshaler.
func (o Occurrence) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves the
// occurrence unset.
func (o *Occurrence) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = Occurrence{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// DatesOver expands the occurrence into dates within epoch's year, starting
// from epoch. Per period the offsets are (i-1)*(period/times) days using
// integer division, so counts that do not divide the period cluster
// towards its start. Dates spilling past the year end are dropped.
func (o Occurrence) DatesOver(epoch caldate.Date) ([]caldate.Date, error) {
	if o.Times < 1 || o.Times > MaxTimes {
		return nil, fmt.Errorf("%w: times must be between 1 and %d, got %d", ErrInvalidOccurrence, MaxTimes, o.Times)
	}

	var dates []caldate.Date
	switch o.Window {
	case Week:
		for d := range caldate.Until(epoch, caldate.StepDays(7), caldate.ThroughYear(epoch.Year)) {
			dates = appendSpread(dates, d, 7, o.Times)
		}
	case Month:
		for d := range caldate.Until(epoch, caldate.StepMonths(1), caldate.ThroughYear(epoch.Year)) {
			dates = appendSpread(dates, d, caldate.DaysInMonth(d.Year, d.Month), o.Times)
		}
	case Year:
		dates = appendSpread(dates, epoch, caldate.DaysInYear(epoch.Year), o.Times)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedWindow, o.Window)
	}

	return slices.DeleteFunc(dates, func(d caldate.Date) bool {
		return d.Year != epoch.Year
	}), nil
}

// appendSpread appends times dates starting at anchor, spaced within a
// period of the given length.
func appendSpread(dates []caldate.Date, anchor caldate.Date, period, times int) []caldate.Date {
	step := period / times
	for i := 1; i <= times; i++ {
		dates = append(dates, anchor.AddDays((i-1)*step%period))
	}
	return dates
}
