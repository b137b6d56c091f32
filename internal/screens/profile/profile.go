package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/violino/internal/levels"
	"github.com/arjunm/violino/internal/progression"
	"github.com/arjunm/violino/internal/router"
	"github.com/arjunm/violino/internal/screen"
	"github.com/arjunm/violino/internal/songbook"
	"github.com/arjunm/violino/internal/ui/components"
	"github.com/arjunm/violino/internal/ui/layout"
	"github.com/arjunm/violino/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeEditName
	modeConfirmReset
)

// avatars the player can cycle through.
var avatars = []string{"🎻", "🎵", "🎶", "🐱", "🦊", "🐻", "⭐"}

// ProfileScreen shows player identity and lifetime stats.
type ProfileScreen struct {
	service *progression.Service
	mode    mode
	input   components.TextInput
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(service *progression.Service) *ProfileScreen {
	return &ProfileScreen{service: service}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeEditName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "N", Description: "Nickname"},
			{Key: "A", Description: "Avatar"},
			{Key: "R", Description: "Reset"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.mode == modeEditName {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	switch p.mode {
	case modeEditName:
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(p.input.Value())
			if name != "" {
				p.service.SetNickname(context.Background(), name)
			}
			p.mode = modeView
			return p, nil
		case "esc":
			p.mode = modeView
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case modeConfirmReset:
		switch kmsg.String() {
		case "y", "Y":
			p.service.ResetAllProgress(context.Background())
			p.mode = modeView
			return p, nil
		case "n", "N", "esc":
			p.mode = modeView
			return p, nil
		}
		return p, nil

	default:
		switch kmsg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n":
			p.mode = modeEditName
			p.input = components.NewTextInput("Your name", false, 20)
			return p, p.input.Init()
		case "a":
			p.cycleAvatar()
			return p, nil
		case "r":
			p.mode = modeConfirmReset
			return p, nil
		}
	}
	return p, nil
}

func (p *ProfileScreen) cycleAvatar() {
	current := p.service.State().AvatarEmoji
	next := avatars[0]
	for i, a := range avatars {
		if a == current {
			next = avatars[(i+1)%len(avatars)]
			break
		}
	}
	p.service.SetAvatarEmoji(context.Background(), next)
}

func (p *ProfileScreen) View(width, height int) string {
	state := p.service.State()

	if p.mode == modeConfirmReset {
		warning := lipgloss.NewStyle().
			Foreground(theme.Error).Bold(true).
			Render("Reset ALL progress?") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).
				Render("XP, levels, streaks and practice history will be wiped.\nYour nickname and avatar stay.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("y to confirm, n to cancel")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(warning))
	}

	name := state.Nickname
	if name == "" {
		name = "Player"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  %s", state.AvatarEmoji, name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d  %s", state.Level, levels.Name(state.Level))))
	b.WriteString("\n\n")

	if p.mode == modeEditName {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("New nickname:"))
		b.WriteString("\n")
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Total XP", fmt.Sprintf("%d", state.XP)},
		{"Current streak", fmt.Sprintf("%d days", state.StreakDays)},
		{"Best streak", fmt.Sprintf("%d days", state.BestStreak)},
		{"Pieces learned", fmt.Sprintf("%d of %d", len(state.CompletedSongs), len(songbook.All()))},
		{"Three-star pieces", fmt.Sprintf("%d", len(state.ThreeStarSongs))},
		{"Practice time", formatDuration(state.TotalPracticeTime)},
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}
