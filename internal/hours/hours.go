package hours

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Clock is a minute-resolution time of day.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// String renders the clock in 12-hour form, e.g. "9:00 AM".
func (c Clock) String() string {
	suffix := "AM"
	hour := c.Hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}

// Interval is one continuous open span on a weekday. Close earlier than
// Open means the span crosses midnight into the following day. Open equal
// to Close is the full-day sentinel ("24 hours").
type Interval struct {
	Open  Clock
	Close Clock
}

// CrossesMidnight reports whether the interval spills into the next day.
func (iv Interval) CrossesMidnight() bool {
	return iv.Close.Before(iv.Open)
}

// FullDay reports whether the interval is the open-all-day sentinel.
func (iv Interval) FullDay() bool {
	return iv.Open == iv.Close
}

// Spec is a normalized weekly schedule: per weekday, a sorted list of
// non-overlapping intervals. A weekday with no intervals is closed all day.
type Spec struct {
	days [7][]Interval
}

// Intervals returns the open spans for the given weekday.
func (s *Spec) Intervals(day time.Weekday) []Interval {
	if s == nil {
		return nil
	}
	return s.days[day]
}

// Add appends an interval to a weekday, keeping the list sorted by open time.
func (s *Spec) Add(day time.Weekday, iv Interval) {
	s.days[day] = append(s.days[day], iv)
	sort.Slice(s.days[day], func(i, j int) bool {
		return s.days[day][i].Open.Before(s.days[day][j].Open)
	})
}

// Empty reports whether no weekday has any interval.
func (s *Spec) Empty() bool {
	if s == nil {
		return true
	}
	for _, ivs := range s.days {
		if len(ivs) > 0 {
			return false
		}
	}
	return true
}

// Equal compares two specs day by day.
func (s *Spec) Equal(other *Spec) bool {
	if s == nil || other == nil {
		return s == other
	}
	for d := 0; d < 7; d++ {
		if len(s.days[d]) != len(other.days[d]) {
			return false
		}
		for i := range s.days[d] {
			if s.days[d][i] != other.days[d][i] {
				return false
			}
		}
	}
	return true
}

// Format renders the spec in the weekday-colon form accepted by Parse, one
// line per open weekday starting from Monday.
func (s *Spec) Format() string {
	if s == nil {
		return ""
	}
	var lines []string
	for offset := 0; offset < 7; offset++ {
		day := time.Weekday((int(time.Monday) + offset) % 7)
		for _, iv := range s.days[day] {
			lines = append(lines, fmt.Sprintf("%s: %s - %s", day, iv.Open, iv.Close))
		}
	}
	return strings.Join(lines, "\n")
}
