// Package season classifies calendar dates into the four fixed seasons.
package season

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/greenthumb/internal/caldate"
)

// ErrUnknownSeason is returned for names or values outside the enumeration.
var ErrUnknownSeason = errors.New("unknown season")

// Season is one of Spring, Summer, Fall or Winter. The zero value is not a
// season.
type Season int

const (
	Spring Season = iota + 1
	Summer
	Fall
	Winter
)

var all = [...]Season{Spring, Summer, Fall, Winter}

// All returns the four seasons in their fixed order.
func All() []Season {
	seasons := all
	return seasons[:]
}

// Valid reports whether s is one of the four seasons.
func (s Season) Valid() bool {
	return s >= Spring && s <= Winter
}

// String returns the English name of the season.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// Parse returns the season with the given English name, ignoring case.
func Parse(name string) (Season, error) {
	name = strings.TrimSpace(name)
	for _, s := range all {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSeason, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Season) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeason, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Season) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Of returns the season a date falls in. A month outside 1..12 yields the
// zero Season.
func Of(d caldate.Date) Season {
	switch d.Month {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Fall
	case time.December, time.January, time.February:
		return Winter
	}
	return 0
}

// FirstDayOf returns the first day of season s in year.
func FirstDayOf(s Season, year int) (caldate.Date, error) {
	var month time.Month
	switch s {
	case Spring:
		month = time.March
	case Summer:
		month = time.June
	case Fall:
		month = time.September
	case Winter:
		month = time.December
	default:
		return caldate.Date{}, fmt.Errorf("%w: %d", ErrUnknownSeason, int(s))
	}
	return caldate.Date{Year: year, Month: month, Day: 1}, nil
}

// IsInSeason reports whether d falls in season s.
func IsInSeason(d caldate.Date, s Season) bool {
	return Of(d) == s
}

// Contains reports whether s is among seasons.
func Contains(seasons []Season, s Season) bool {
	for _, candidate := range seasons {
		if candidate == s {
			return true
		}
	}
	return false
}
