package dateutil

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	d := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := Day(d); got != "2025-03-07" {
		t.Errorf("Day = %q, want 2025-03-07", got)
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, 3, 8, 0, 1, 0, 0, time.UTC)

	tests := []struct {
		d    string
		want bool
	}{
		{"2025-03-08", true},
		{"2025-03-07", false},
		{"2025-03-09", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsToday(tt.d, now); got != tt.want {
			t.Errorf("IsToday(%q) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestIsYesterday(t *testing.T) {
	// One minute past midnight: the previous calendar day is yesterday
	// even though only minutes have elapsed.
	now := time.Date(2025, 3, 8, 0, 1, 0, 0, time.UTC)

	tests := []struct {
		d    string
		want bool
	}{
		{"2025-03-07", true},
		{"2025-03-08", false},
		{"2025-03-06", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsYesterday(tt.d, now); got != tt.want {
			t.Errorf("IsYesterday(%q) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestIsYesterdayAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if !IsYesterday("2025-02-28", now) {
		t.Error("expected 2025-02-28 to be yesterday on 2025-03-01")
	}
}
