package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "weds": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thurs": time.Thursday, "thur": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var (
	dayLineRe    = regexp.MustCompile(`(?i)^([a-z]+)\s*:\s*(.+?)\s*(?:-|–|to)\s*(.+)$`)
	dayRangeRe   = regexp.MustCompile(`(?i)^([a-z]+)(?:\s*[-–]\s*([a-z]+))?\s+(.+?)\s*[-–]\s*(.+)$`)
	clockRe      = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?$`)
	fullDayToken = regexp.MustCompile(`(?i)^(?:open)?(?:daily)?:?\s*24\s*(?:hours|hrs|/\s*7)$`)
)

// Parse converts a human-authored hours string into a Spec. The recognized
// formats are attempted in order and the first match wins; anything else is
// a parse failure, reported as (nil, false) rather than an error. Malformed
// input never panics.
func Parse(raw string) (*Spec, bool) {
	cleaned := stripDecorations(raw)
	if cleaned == "" || strings.EqualFold(cleaned, "none") {
		return nil, false
	}

	if spec, ok := parseWeekdayLines(cleaned); ok {
		return spec, true
	}
	if spec, ok := parseCompactRanges(cleaned); ok {
		return spec, true
	}
	if spec, ok := parseAllDay(cleaned); ok {
		return spec, true
	}
	return nil, false
}

// stripDecorations removes leading status glyphs (emoji markers some rows
// carry) and surrounding whitespace. Raw hours are supposed to be stored
// undecorated, but the parser stays defensive.
func stripDecorations(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimLeftFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// parseWeekdayLines handles the one-entry-per-weekday form,
// "Monday: 9:00 AM - 5:00 PM", separated by newlines or commas.
func parseWeekdayLines(text string) (*Spec, bool) {
	entries := splitEntries(text)
	if len(entries) == 0 {
		return nil, false
	}

	spec := &Spec{}
	for _, entry := range entries {
		m := dayLineRe.FindStringSubmatch(entry)
		if m == nil {
			return nil, false
		}
		day, ok := weekdayNames[strings.ToLower(m[1])]
		if !ok {
			return nil, false
		}
		iv, ok := parseInterval(m[2], m[3])
		if !ok {
			return nil, false
		}
		spec.Add(day, iv)
	}
	return spec, true
}

// parseCompactRanges handles the day-range form, "Mon-Fri 9AM-5PM, Sat 10AM-2PM".
func parseCompactRanges(text string) (*Spec, bool) {
	entries := splitEntries(text)
	if len(entries) == 0 {
		return nil, false
	}

	spec := &Spec{}
	for _, entry := range entries {
		m := dayRangeRe.FindStringSubmatch(entry)
		if m == nil {
			return nil, false
		}
		first, ok := weekdayNames[strings.ToLower(m[1])]
		if !ok {
			return nil, false
		}
		last := first
		if m[2] != "" {
			last, ok = weekdayNames[strings.ToLower(m[2])]
			if !ok {
				return nil, false
			}
		}
		iv, ok := parseInterval(m[3], m[4])
		if !ok {
			return nil, false
		}
		for day := first; ; day = (day + 1) % 7 {
			spec.Add(day, iv)
			if day == last {
				break
			}
		}
	}
	return spec, true
}

// parseAllDay handles "24 hours", "24/7" and "Daily: 24 hours" literals,
// expanding them to the full-day sentinel on all seven weekdays.
func parseAllDay(text string) (*Spec, bool) {
	collapsed := strings.Join(strings.Fields(text), " ")
	if !fullDayToken.MatchString(strings.ReplaceAll(collapsed, " ", "")) &&
		!fullDayToken.MatchString(collapsed) {
		return nil, false
	}
	spec := &Spec{}
	for day := time.Sunday; day <= time.Saturday; day++ {
		spec.Add(day, Interval{})
	}
	return spec, true
}

func splitEntries(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

func parseInterval(openRaw, closeRaw string) (Interval, bool) {
	open, ok := parseClock(openRaw)
	if !ok {
		return Interval{}, false
	}
	close, ok := parseClock(closeRaw)
	if !ok {
		return Interval{}, false
	}
	// Close earlier than open means the span crosses midnight; it is kept
	// as-is and interpreted by the evaluator.
	return Interval{Open: open, Close: close}, true
}

// parseClock accepts "H", "H:MM", "HAM/PM", "H:MM AM/PM" and 24-hour "HH:MM".
// Minutes default to zero.
func parseClock(raw string) (Clock, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Clock{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return Clock{}, false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return Clock{}, false
		}
	}

	meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return Clock{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return Clock{}, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return Clock{}, false
		}
	}
	return Clock{Hour: hour, Minute: minute}, true
}
