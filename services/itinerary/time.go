package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

// timeToMinutes parses an "HH:MM" clock string into minutes from
// midnight. There is no timezone handling and no cross-midnight
// semantics; every time lives inside its day.
func timeToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, NewValidationError("malformed time %q, expected HH:MM", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, NewValidationError("malformed time %q, expected HH:MM", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, NewValidationError("malformed time %q, expected HH:MM", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, NewValidationError("time %q out of range", clock)
	}
	return hour*60 + minute, nil
}

// minutesToTime formats minutes from midnight as a zero-padded "HH:MM"
// string.
func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
