// Package partition addresses fixed time-of-day windows of a calendar day.
// All times are handled in UTC.
package partition

import "time"

type Grid struct {
	SecondsPerPartition int
	Count               int
}

func NewGrid(secondsPerPartition, count int) Grid {
	return Grid{SecondsPerPartition: secondsPerPartition, Count: count}
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SecondsSinceMidnight(t time.Time) int {
	t = t.UTC()
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Number returns the 1-based partition addressed by t, always in [1, Count].
func (g Grid) Number(t time.Time) int {
	if g.Count <= 1 || g.SecondsPerPartition <= 0 {
		return 1
	}
	n := SecondsSinceMidnight(t)/g.SecondsPerPartition + 1
	if n > g.Count {
		return g.Count
	}
	if n < 1 {
		return 1
	}
	return n
}

func (g Grid) Valid(n int) bool {
	return n >= 1 && n <= g.Count
}

func (g Grid) Start(n int, day time.Time) time.Time {
	return Day(day).Add(time.Duration((n-1)*g.SecondsPerPartition) * time.Second)
}

func (g Grid) End(n int, day time.Time) time.Time {
	return Day(day).Add(time.Duration(n*g.SecondsPerPartition) * time.Second)
}

// UntilEnd returns how long partition n of day stays open after now,
// or false when now is already past its end.
func (g Grid) UntilEnd(n int, day, now time.Time) (time.Duration, bool) {
	end := g.End(n, day)
	if !now.Before(end) {
		return 0, false
	}
	return end.Sub(now), true
}
