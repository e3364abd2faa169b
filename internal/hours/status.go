package hours

import (
	"fmt"
	"time"
)

// Status is the coarse open/closed outcome of an evaluation.
type Status string

const (
	StatusOpen    Status = "OPEN"
	StatusClosed  Status = "CLOSED"
	StatusUnknown Status = "UNKNOWN"
)

// ReasonUnavailable is the Reason used when no usable hours data exists.
const ReasonUnavailable = "hours data not available or unparseable"

// Result is the outcome of one status evaluation. It is built fresh on
// every call and never cached by this package.
type Result struct {
	IsOpen      bool
	Status      Status
	Reason      string
	LocalTime   time.Time
	Timezone    string
	NextOpen    *time.Time
	HoursParsed bool
}

// Evaluate computes the open/closed status for a schedule at the given
// instant, interpreted in the named timezone. A nil spec means the hours
// were unparseable or absent and yields UNKNOWN. The function never panics
// and never returns an error: an inconsistent spec is downgraded to UNKNOWN
// with the failure described in Reason.
func Evaluate(spec *Spec, timezone string, now time.Time) (result Result) {
	loc := loadLocation(timezone)
	local := now.In(loc)

	result = Result{
		Status:    StatusUnknown,
		LocalTime: local,
		Timezone:  timezone,
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Status:      StatusUnknown,
				Reason:      fmt.Sprintf("hours evaluation failed: %v", r),
				LocalTime:   local,
				Timezone:    timezone,
				HoursParsed: true,
			}
		}
	}()

	if spec == nil {
		result.Reason = ReasonUnavailable
		return result
	}
	result.HoursParsed = true

	nowMinutes := local.Hour()*60 + local.Minute()
	today := local.Weekday()

	if reason, open := openNow(spec, today, nowMinutes); open {
		result.IsOpen = true
		result.Status = StatusOpen
		result.Reason = reason
		return result
	}

	result.Status = StatusClosed
	next := nextOpening(spec, local, nowMinutes)
	if next == nil {
		result.Reason = "closed; no upcoming opening in schedule"
		return result
	}
	result.NextOpen = next
	result.Reason = fmt.Sprintf("closed; opens %s at %s",
		next.Weekday(), Clock{Hour: next.Hour(), Minute: next.Minute()})
	return result
}

// openNow tests today's intervals plus yesterday's overnight spill.
func openNow(spec *Spec, today time.Weekday, nowMinutes int) (string, bool) {
	for _, iv := range spec.Intervals(today) {
		switch {
		case iv.FullDay():
			return "open 24 hours", true
		case iv.CrossesMidnight():
			// Active from its start until end of day; the post-midnight
			// half belongs to tomorrow's evaluation of yesterday.
			if nowMinutes >= iv.Open.Minutes() {
				return fmt.Sprintf("open until %s", iv.Close), true
			}
		default:
			if nowMinutes >= iv.Open.Minutes() && nowMinutes < iv.Close.Minutes() {
				return fmt.Sprintf("open until %s", iv.Close), true
			}
		}
	}

	yesterday := (today + 6) % 7
	for _, iv := range spec.Intervals(yesterday) {
		if iv.FullDay() || !iv.CrossesMidnight() {
			continue
		}
		if nowMinutes < iv.Close.Minutes() {
			return fmt.Sprintf("open until %s (%s overnight hours)", iv.Close, yesterday), true
		}
	}
	return "", false
}

// nextOpening scans forward from the current instant through the next seven
// days, wrapping across the week boundary, for the nearest interval start.
func nextOpening(spec *Spec, local time.Time, nowMinutes int) *time.Time {
	for offset := 0; offset <= 7; offset++ {
		day := (local.Weekday() + time.Weekday(offset)) % 7
		for _, iv := range spec.Intervals(day) {
			start := iv.Open.Minutes()
			if offset == 0 && start <= nowMinutes {
				continue
			}
			if offset == 7 && start > nowMinutes {
				// Already reported at offset 0.
				continue
			}
			candidate := time.Date(local.Year(), local.Month(), local.Day()+offset,
				iv.Open.Hour, iv.Open.Minute, 0, 0, local.Location())
			return &candidate
		}
	}
	return nil
}

func loadLocation(timezone string) *time.Location {
	if loc, err := time.LoadLocation(timezone); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
