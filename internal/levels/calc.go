package levels

// LevelForXP returns the level for cumulative xp: the largest level
// whose threshold xp meets or exceeds. XP below every threshold
// (including negative values) maps to level 1.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range XPThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// XPRangeForLevel returns the cumulative XP band [lo, hi) covered by
// level. The final level's band extends FinalBandXP past its threshold.
// Out-of-range levels are clamped into the table.
func XPRangeForLevel(level int) (lo, hi int) {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel() {
		level = MaxLevel()
	}
	lo = XPThresholds[level-1]
	if level < MaxLevel() {
		hi = XPThresholds[level]
	} else {
		hi = XPThresholds[MaxLevel()-1] + FinalBandXP
	}
	return lo, hi
}

// ProgressPercent returns how far xp sits within level's band, as a
// percentage clamped to [0, 100].
func ProgressPercent(xp, level int) float64 {
	lo, hi := XPRangeForLevel(level)
	if hi <= lo {
		return 0
	}
	pct := float64(xp-lo) / float64(hi-lo) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// XPToNextLevel returns the XP still needed to leave level's band,
// never negative.
func XPToNextLevel(xp, level int) int {
	_, hi := XPRangeForLevel(level)
	if d := hi - xp; d > 0 {
		return d
	}
	return 0
}
