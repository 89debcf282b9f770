package calendar

import (
	"fmt"
	"iter"
	"time"

	"github.com/nibzard/greenthumb/internal/caldate"
)

// Calendar maps every day of one year to its task lists. All days exist
// from construction on; only their lists change afterwards.
type Calendar struct {
	epoch caldate.Date
	days  []caldate.Date
	lists map[caldate.Date]*TaskLists
}

// New returns a calendar covering every day of year with empty task lists.
func New(year int) *Calendar {
	epoch := caldate.FirstOfYear(year)
	c := &Calendar{
		epoch: epoch,
		days:  make([]caldate.Date, 0, caldate.DaysInYear(year)),
		lists: make(map[caldate.Date]*TaskLists, caldate.DaysInYear(year)),
	}
	for d := epoch; d.Year == year; d = d.AddDays(1) {
		c.days = append(c.days, d)
		c.lists[d] = NewTaskLists()
	}
	return c
}

// Epoch returns January 1st of the calendar year.
func (c *Calendar) Epoch() caldate.Date {
	return c.epoch
}

// Year returns the calendar year.
func (c *Calendar) Year() int {
	return c.epoch.Year
}

// Len returns the number of days in the calendar.
func (c *Calendar) Len() int {
	return len(c.days)
}

// TaskLists returns the task lists of day d.
func (c *Calendar) TaskLists(d caldate.Date) (*TaskLists, error) {
	lists, ok := c.lists[d]
	if !ok {
		return nil, fmt.Errorf("date %s is outside calendar year %d", d, c.epoch.Year)
	}
	return lists, nil
}

// Days yields every day with its task lists in ascending date order.
func (c *Calendar) Days() iter.Seq2[caldate.Date, *TaskLists] {
	return func(yield func(caldate.Date, *TaskLists) bool) {
		for _, d := range c.days {
			if !yield(d, c.lists[d]) {
				return
			}
		}
	}
}

// Month yields the days of month m with their task lists in ascending
// order.
func (c *Calendar) Month(m time.Month) iter.Seq2[caldate.Date, *TaskLists] {
	return func(yield func(caldate.Date, *TaskLists) bool) {
		for _, d := range c.days {
			if d.Month != m {
				continue
			}
			if !yield(d, c.lists[d]) {
				return
			}
		}
	}
}
