package nfc

import (
	"testing"
	"time"
)

func TestFormatNST(t *testing.T) {
	ts, err := ParseTimestamp("2021-02-16T08:47:18+00:00")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if got := FormatNST(ts); got != "2021-02-16T00:47:18-08:00" {
		t.Fatalf("expected 2021-02-16T00:47:18-08:00 got %s", got)
	}
}

func TestParseTimestampRejects(t *testing.T) {
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected an error for a non-RFC3339 timestamp")
	}
}

func TestIsOutdatedLock(t *testing.T) {
	start := "2021-02-15T23:47:18+00:00"
	startTime, _ := ParseTimestamp(start)

	testcases := []struct {
		name     string
		isOver   bool
		now      time.Time
		expected bool
	}{
		{"Within 24h", false, startTime.Add(23 * time.Hour), false},
		{"Past 24h, still open", false, startTime.Add(25 * time.Hour), true},
		{"Past 24h, finished", true, startTime.Add(25 * time.Hour), false},
	}

	for _, tc := range testcases {
		got := isOutdatedLockAt(start, tc.isOver, tc.now)
		if got != tc.expected {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.expected, got)
		}
	}

	if isOutdatedLockAt("", false, startTime.Add(48*time.Hour)) {
		t.Fatalf("expected false without a start timestamp")
	}
}
