package levels

import "testing"

func TestXPThresholdsStrictlyIncreasing(t *testing.T) {
	if XPThresholds[0] != 0 {
		t.Fatalf("first threshold = %d, want 0", XPThresholds[0])
	}
	for i := 1; i < len(XPThresholds); i++ {
		if XPThresholds[i] <= XPThresholds[i-1] {
			t.Errorf("thresholds not strictly increasing at index %d: %d <= %d",
				i, XPThresholds[i], XPThresholds[i-1])
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Open Strings"},
		{10, "Virtuoso"},
		{0, "Open Strings"},
		{99, "Virtuoso"},
	}

	for _, tt := range tests {
		if got := Name(tt.level); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNameCoversEveryLevel(t *testing.T) {
	if len(levelNames) != MaxLevel() {
		t.Errorf("levelNames has %d entries, want %d", len(levelNames), MaxLevel())
	}
}
