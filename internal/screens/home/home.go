package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjunm/violino/internal/dateutil"
	"github.com/arjunm/violino/internal/levels"
	"github.com/arjunm/violino/internal/progression"
	"github.com/arjunm/violino/internal/router"
	"github.com/arjunm/violino/internal/screen"
	"github.com/arjunm/violino/internal/screens/history"
	"github.com/arjunm/violino/internal/screens/practice"
	"github.com/arjunm/violino/internal/screens/profile"
	"github.com/arjunm/violino/internal/selfupdate"
	"github.com/arjunm/violino/internal/store"
	"github.com/arjunm/violino/internal/ui/components"
)

type updateCheckedMsg struct {
	LatestVersion string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	service       *progression.Service
	menu          components.Menu
	menuLabels    []string
	version       string
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(service *progression.Service, eventRepo store.EventRepo, version string) *HomeScreen {
	menuLabels := []string{"PRACTICE", "HISTORY", "PROFILE", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(service)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(service)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		service:    service,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		version:    version,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.version == "" || h.version == "(devel)" {
		return nil
	}
	version := h.version
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return updateCheckedMsg{}
		}
		return updateCheckedMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if checked, ok := msg.(updateCheckedMsg); ok {
		h.latestVersion = checked.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	state := h.service.State()

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(state), cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		levels.Name(state.Level), state.Level, state.StreakDays,
		len(state.CompletedSongs), cw, compact))

	// 4. XP progress toward the next level
	bar := components.NewProgressBar(
		"XP", levels.ProgressPercent(state.XP, state.Level), true, cw-4)
	sections = append(sections, bar.View())

	// 5. Menu (same width box)
	if compact {
		sections = append(sections, renderStageMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderStageMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in the stage frame, centered in the full area
	return renderStageFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotVariant picks the mascot mood: celebrating after a practice
// today, alert when yesterday's streak has not been continued yet.
func (h *HomeScreen) mascotVariant(state progression.GameState) MascotVariant {
	if state.TodayPracticeCount > 0 && dateutil.IsToday(state.LastPracticeDate, time.Now()) {
		return MascotCelebrating
	}
	if state.StreakDays > 0 && dateutil.IsYesterday(state.LastPracticeDate, time.Now()) {
		return MascotAlert
	}
	return MascotIdle
}
