package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot is a booked interval on a provider's day, in minutes since midnight.
type Slot struct {
	Start    int
	Duration int
}

// End returns the exclusive end of the slot.
func (s Slot) End() int {
	return s.Start + s.Duration
}

// ParseClock converts an HH:MM wall-clock time to minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed clock time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed clock time %q", value)
	}
	return hours*60 + minutes, nil
}

// HasEndpointConflict reports whether either endpoint of the candidate slot
// falls within an existing slot, inclusive of the existing slot's start and
// end.
//
// This is the test existing installations rely on. It does not detect an
// existing slot lying strictly inside a longer candidate, so bookings
// validated by legacy data can reproduce that shape; HasOverlapConflict is
// the corrected test, selectable by configuration.
func HasEndpointConflict(candidate Slot, existing []Slot) bool {
	candidateEnd := candidate.End()
	for _, slot := range existing {
		start, end := slot.Start, slot.End()
		if candidate.Start >= start && candidate.Start <= end {
			return true
		}
		if candidateEnd >= start && candidateEnd <= end {
			return true
		}
	}
	return false
}

// HasOverlapConflict reports whether the candidate interval
// [start, start+duration) intersects any existing interval.
func HasOverlapConflict(candidate Slot, existing []Slot) bool {
	candidateEnd := candidate.End()
	for _, slot := range existing {
		if candidate.Start < slot.End() && slot.Start < candidateEnd {
			return true
		}
	}
	return false
}
