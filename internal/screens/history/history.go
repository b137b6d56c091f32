package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/arjunm/violino/internal/router"
	"github.com/arjunm/violino/internal/screen"
	"github.com/arjunm/violino/internal/songbook"
	"github.com/arjunm/violino/internal/store"
	"github.com/arjunm/violino/internal/ui/layout"
	"github.com/arjunm/violino/internal/ui/theme"
)

type historyLoadedMsg struct {
	Practices []store.PracticeEventRecord
	Total     int
	Err       error
}

// HistoryScreen displays past practices.
type HistoryScreen struct {
	eventRepo store.EventRepo
	practices []store.PracticeEventRecord
	total     int
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		practices, err := s.eventRepo.QueryPracticeEvents(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		total, err := s.eventRepo.CountPractices(ctx)
		if err != nil {
			total = len(practices)
		}

		return historyLoadedMsg{Practices: practices, Total: total}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.practices = msg.Practices
			s.total = msg.Total
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.practices)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.practices) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No practices yet. Pick up your violin!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.total > len(s.practices) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("Showing %d of %d practices", len(s.practices), s.total))))
		b.WriteString("\n\n")
	}

	for i, rec := range s.practices {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		stars := ""
		if rec.ThreeStar {
			stars = "  ★★★"
		}
		newTag := ""
		if rec.NewSong {
			newTag = "  NEW"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %.0f pts  +%d XP%s%s",
			prefix, dateStr, songbook.Title(rec.SongID), rec.Score, rec.XPEarned, stars, newTag)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
