package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

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

type phase int

const (
	phasePickSong phase = iota
	phaseEnterScore
	phaseResult
)

type songChosenMsg struct {
	SongID string
}

// PracticeScreen walks through one practice: pick a piece, record the
// score, show what it earned.
type PracticeScreen struct {
	service *progression.Service

	phase     phase
	songMenu  components.Menu
	input     components.TextInput
	songID    string
	result    progression.PracticeResult
	newLevel  int
	startedAt time.Time
	errMsg    string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a new PracticeScreen.
func New(service *progression.Service) *PracticeScreen {
	items := make([]components.MenuItem, 0, len(songbook.All()))
	for _, song := range songbook.All() {
		id := song.ID
		label := fmt.Sprintf("%s  %s", song.Title, songbook.DifficultyStars(song.Difficulty))
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return songChosenMsg{SongID: id} }
			},
		})
	}

	return &PracticeScreen{
		service:   service,
		songMenu:  components.NewMenu(items),
		startedAt: time.Now(),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseEnterScore:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Again"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case songChosenMsg:
		p.songID = msg.SongID
		p.phase = phaseEnterScore
		p.input = components.NewTextInput("0-100", true, 3)
		p.errMsg = ""
		return p, p.input.Init()

	case tea.KeyMsg:
		switch p.phase {
		case phaseEnterScore:
			switch msg.String() {
			case "esc":
				p.phase = phasePickSong
				return p, nil
			case "enter":
				return p, p.submit()
			}
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd

		case phaseResult:
			switch msg.String() {
			case "enter":
				p.phase = phasePickSong
				p.errMsg = ""
				return p, nil
			case "esc":
				return p, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return p, nil

		default:
			if msg.String() == "esc" {
				return p, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	if p.phase == phasePickSong {
		var cmd tea.Cmd
		p.songMenu, cmd = p.songMenu.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) submit() tea.Cmd {
	score, err := p.input.NumericValue()
	if err != nil {
		p.errMsg = "Enter a score between 0 and 100"
		return nil
	}
	if score < 0 || score > 100 {
		p.errMsg = "Enter a score between 0 and 100"
		return nil
	}

	ctx := context.Background()
	p.result = p.service.CompletePractice(ctx, p.songID, float64(score))
	p.newLevel = p.result.NewLevel

	elapsed := int(time.Since(p.startedAt).Seconds())
	if elapsed > 0 {
		p.service.AddPracticeTime(ctx, elapsed)
	}
	p.startedAt = time.Now()

	p.phase = phaseResult
	p.errMsg = ""
	return nil
}

func (p *PracticeScreen) View(width, height int) string {
	switch p.phase {
	case phaseEnterScore:
		return p.viewScoreInput(width, height)
	case phaseResult:
		return p.viewResult(width, height)
	default:
		return p.viewSongMenu(width, height)
	}
}

func (p *PracticeScreen) viewSongMenu(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick a piece to practice")

	content := title + "\n\n" + p.songMenu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PracticeScreen) viewScoreInput(width, height int) string {
	song := songbook.ByID(p.songID)
	title := p.songID
	if song != nil {
		title = song.Title
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render(title))
	b.WriteString("\n")
	if song != nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s  %s", song.Composer, songbook.DifficultyStars(song.Difficulty))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render("How did it go? Score your practice:"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (p *PracticeScreen) viewResult(width, height int) string {
	var lines []string

	if p.result.IsThreeStar {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Gold).Bold(true).
			Render("★ ★ ★  PERFECT!  ★ ★ ★"))
	} else {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).Bold(true).
			Render("Practice complete!"))
	}
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%s  +%d XP", songbook.Title(p.songID), p.result.XPEarned)))

	if p.result.IsNewSong {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("New piece bonus  +%d XP", progression.NewSongBonus)))
	}
	if p.result.StreakBonus > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Streak bonus  +%d XP", p.result.StreakBonus)))
	}

	if p.result.LeveledUp {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("LEVEL UP!  Now level %d: %s",
				p.newLevel, levels.Name(p.newLevel))))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
