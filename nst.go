// nst.go implements the time helpers of the round model. All surfaced
// timestamps are RFC3339; Neopian Standard Time is a fixed UTC-08:00 offset
// with no daylight saving.

package nfc

import "time"

// NST is the Neopian Standard Time zone, fixed at UTC-08:00.
var NST = time.FixedZone("NST", -8*60*60)

// ParseTimestamp parses an RFC3339 timestamp as carried by the round
// payload.
func ParseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, invalidInput("malformed timestamp %q: %v", value, err)
	}
	return ts, nil
}

// FormatNST renders a timestamp as an RFC3339 string in NST.
func FormatNST(ts time.Time) string {
	return ts.In(NST).Format(time.RFC3339)
}

// isOutdatedLockAt reports whether the round failed to finalize within 24
// hours of its scheduled start, as of the given instant. A round with no
// parseable start time is never considered outdated.
func isOutdatedLockAt(start string, isOver bool, now time.Time) bool {
	if isOver || start == "" {
		return false
	}
	ts, err := ParseTimestamp(start)
	if err != nil {
		return false
	}
	return now.After(ts.Add(24 * time.Hour))
}
