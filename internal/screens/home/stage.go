package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjunm/violino/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const stageTitleFull = ` ██╗   ██╗ ██╗  ██████╗  ██╗      ██╗ ███╗   ██╗  ██████╗
 ██║   ██║ ██║ ██╔═══██╗ ██║      ██║ ████╗  ██║ ██╔═══██╗
 ██║   ██║ ██║ ██║   ██║ ██║      ██║ ██╔██╗ ██║ ██║   ██║
 ╚██╗ ██╔╝ ██║ ██║   ██║ ██║      ██║ ██║╚██╗██║ ██║   ██║
  ╚████╔╝  ██║ ╚██████╔╝ ███████╗ ██║ ██║ ╚████║ ╚██████╔╝
   ╚═══╝   ╚═╝  ╚═════╝  ╚══════╝ ╚═╝ ╚═╝  ╚═══╝  ╚═════╝`

const stageTitleCompact = "V · I · O · L · I · N · O"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for stage border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 62 {
		w = 62
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(stageTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(stageTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(levelName string, level, streak, songs, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	songStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("♪%d", level)),
			streakText(streak, true, streakStyle, dimStyle),
			songStyle.Render(fmt.Sprintf("♫%d", songs)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("♪ LV %d %s", level, strings.ToUpper(levelName))),
			streakText(streak, false, streakStyle, dimStyle),
			songStyle.Render(fmt.Sprintf("♫ %d SONGS", songs)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(days int, compact bool, active, dim lipgloss.Style) string {
	if days == 0 {
		if compact {
			return dim.Render("★0")
		}
		return dim.Render("★ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("★%d", days))
	}
	return active.Render(fmt.Sprintf("★ %d DAY STREAK", days))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderStageMenu renders each menu item as a fixed-width button.
func renderStageMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Gold).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Gold).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStageMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderStageMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderStageFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderStageFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
