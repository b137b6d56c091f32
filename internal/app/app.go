package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/violino/internal/progression"
	"github.com/arjunm/violino/internal/router"
	"github.com/arjunm/violino/internal/screen"
	"github.com/arjunm/violino/internal/screens/home"
	"github.com/arjunm/violino/internal/screens/welcome"
	"github.com/arjunm/violino/internal/store"
	"github.com/arjunm/violino/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Service   *progression.Service
	EventRepo store.EventRepo
	Version   string

	// SkipWelcome jumps straight to the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Service, opts.EventRepo, opts.Version)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders without chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	state := m.opts.Service.State()
	header := layout.RenderHeader(title, state.Level, state.StreakDays, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. The streak check runs before the
// first frame so a lapsed streak never flashes its stale count.
func Run(opts Options) error {
	opts.Service.CheckAndUpdateStreak(context.Background())

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	return opts.Service.Flush(context.Background())
}
