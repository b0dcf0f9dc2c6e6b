package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM". Missing or non-numeric parts become 0;
// schedule data from upstream systems is best-effort, so this never fails.
func ParseTimeOfDay(s string) TimeOfDay {
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	hh := atoiOrZero(parts[0])
	mm := 0
	if len(parts) > 1 {
		mm = atoiOrZero(parts[1])
	}
	return TimeOfDay(hh*60 + mm)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// String renders the zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is a half-open [Start, End) range within one calendar day.
// An interval with End <= Start is degenerate and contributes nothing.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseIntervalRange parses "HH:MM-HH:MM" with optional whitespace around
// either end. An absent or malformed range yields the degenerate (0,0).
func ParseIntervalRange(s string) Interval {
	if s == "" {
		return Interval{}
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) < 2 {
		return Interval{}
	}
	return Interval{
		Start: ParseTimeOfDay(strings.TrimSpace(parts[0])),
		End:   ParseTimeOfDay(strings.TrimSpace(parts[1])),
	}
}
