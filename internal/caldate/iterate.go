package caldate

import "iter"

// Until returns a restartable sequence that yields from, then repeatedly
// advances with next and yields the advanced date for as long as while holds
// on it. The first value is always yielded; the predicate is evaluated after
// each step, never before the first yield.
//
// Until never bounds iteration itself. Callers either supply a predicate
// that eventually turns false or stop ranging early.
func Until(from Date, next func(Date) Date, while func(Date) bool) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		current := from
		for {
			if !yield(current) {
				return
			}
			current = next(current)
			if !while(current) {
				return
			}
		}
	}
}

// StepDays returns a step function adding n days.
func StepDays(n int) func(Date) Date {
	return func(d Date) Date { return d.AddDays(n) }
}

// StepMonths returns a step function adding n months with day clamping.
func StepMonths(n int) func(Date) Date {
	return func(d Date) Date { return d.AddMonths(n) }
}

// ThroughYear returns a predicate that holds while a date's year is at most
// year.
func ThroughYear(year int) func(Date) bool {
	return func(d Date) bool { return d.Year <= year }
}
