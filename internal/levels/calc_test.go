package levels

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{3199, 9},
		{3200, 10},
		{999999, 10},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPBoundaryExactness(t *testing.T) {
	for i, threshold := range XPThresholds {
		if got := LevelForXP(threshold); got != i+1 {
			t.Errorf("LevelForXP(%d) = %d, want %d", threshold, got, i+1)
		}
		if i > 0 {
			if got := LevelForXP(threshold - 1); got != i {
				t.Errorf("LevelForXP(%d) = %d, want %d", threshold-1, got, i)
			}
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(-10)
	for xp := -9; xp <= 4500; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("LevelForXP not monotonic at xp=%d: %d < %d", xp, cur, prev)
		}
		prev = cur
	}
}

func TestXPRangeForLevel(t *testing.T) {
	tests := []struct {
		level  int
		wantLo int
		wantHi int
	}{
		{1, 0, 100},
		{2, 100, 250},
		{9, 2500, 3200},
		{10, 3200, 4200},
		// Out-of-range levels clamp into the table.
		{0, 0, 100},
		{-3, 0, 100},
		{11, 3200, 4200},
	}

	for _, tt := range tests {
		lo, hi := XPRangeForLevel(tt.level)
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("XPRangeForLevel(%d) = (%d, %d), want (%d, %d)",
				tt.level, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		want  float64
	}{
		{0, 1, 0},
		{50, 1, 50},
		{100, 2, 0},
		{175, 2, 50},
		{250, 2, 100}, // past the band, clamped
		{-10, 1, 0},
	}

	for _, tt := range tests {
		if got := ProgressPercent(tt.xp, tt.level); got != tt.want {
			t.Errorf("ProgressPercent(%d, %d) = %v, want %v", tt.xp, tt.level, got, tt.want)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		want  int
	}{
		{0, 1, 100},
		{60, 1, 40},
		{100, 2, 150},
		{5000, 10, 0}, // beyond the final band
	}

	for _, tt := range tests {
		if got := XPToNextLevel(tt.xp, tt.level); got != tt.want {
			t.Errorf("XPToNextLevel(%d, %d) = %d, want %d", tt.xp, tt.level, got, tt.want)
		}
	}
}
