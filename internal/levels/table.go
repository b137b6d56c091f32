// Package levels defines the level table and the pure functions that
// map cumulative XP to levels and progress.
package levels

// XPThresholds lists the cumulative XP required to be at each level.
// Index i holds the minimum XP for level i+1. The table is strictly
// increasing and starts at 0.
var XPThresholds = []int{0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200}

// FinalBandXP is the open-ended width of the last level's XP band,
// used so progress within the final level still renders meaningfully.
const FinalBandXP = 1000

// MaxLevel returns the highest attainable level.
func MaxLevel() int {
	return len(XPThresholds)
}

var levelNames = []string{
	"Open Strings",
	"First Position",
	"Steady Bow",
	"Scale Climber",
	"Singing Tone",
	"Shifting Up",
	"Third Position",
	"Concertmaster",
	"Soloist",
	"Virtuoso",
}

// Name returns a display name for the level. Out-of-range levels are
// clamped into the table.
func Name(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelNames) {
		level = len(levelNames)
	}
	return levelNames[level-1]
}
