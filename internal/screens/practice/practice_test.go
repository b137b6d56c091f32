package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjunm/violino/internal/progression"
	"github.com/arjunm/violino/internal/router"
	"github.com/arjunm/violino/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen() (*PracticeScreen, *progression.Service) {
	svc := progression.NewService(nil, nil, nil)
	return New(svc), svc
}

func typeScore(t *testing.T, p *PracticeScreen, digits string) {
	t.Helper()
	var s screen.Screen = p
	for _, r := range digits {
		s, _ = s.Update(keyPress(r))
	}
}

func TestStartsOnSongMenu(t *testing.T) {
	p, _ := newTestScreen()
	if p.phase != phasePickSong {
		t.Fatalf("expected song menu phase, got %d", p.phase)
	}
	view := p.View(80, 24)
	if view == "" {
		t.Error("song menu view should not be empty")
	}
}

func TestSongChosenMovesToScoreEntry(t *testing.T) {
	p, _ := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})

	if p.phase != phaseEnterScore {
		t.Fatalf("expected score entry phase, got %d", p.phase)
	}
	if p.songID != "twinkle" {
		t.Errorf("expected songID twinkle, got %q", p.songID)
	}
}

func TestSubmitScoreCompletesPractice(t *testing.T) {
	p, svc := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	typeScore(t, p, "80")
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseResult {
		t.Fatalf("expected result phase, got %d", p.phase)
	}
	// 80 * 0.5 = 40 base, +20 new song, +5 streak day 1
	if p.result.XPEarned != 65 {
		t.Errorf("expected 65 XP, got %d", p.result.XPEarned)
	}
	if !p.result.IsNewSong {
		t.Error("first twinkle practice should be a new song")
	}

	state := svc.State()
	if state.XP != 65 {
		t.Errorf("service state XP = %d, want 65", state.XP)
	}
	if !state.CompletedSongs["twinkle"] {
		t.Error("twinkle should be marked completed")
	}
}

func TestSubmitRejectsOutOfRangeScore(t *testing.T) {
	p, svc := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	typeScore(t, p, "999")
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseEnterScore {
		t.Fatalf("expected to stay in score entry, got phase %d", p.phase)
	}
	if p.errMsg == "" {
		t.Error("expected an error message for out-of-range score")
	}
	if svc.State().XP != 0 {
		t.Error("no XP should be granted for a rejected score")
	}
}

func TestSubmitRejectsEmptyScore(t *testing.T) {
	p, _ := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseEnterScore {
		t.Fatalf("expected to stay in score entry, got phase %d", p.phase)
	}
	if p.errMsg == "" {
		t.Error("expected an error message for empty score")
	}
}

func TestResultEnterReturnsToSongMenu(t *testing.T) {
	p, _ := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	typeScore(t, p, "50")
	p.Update(specialKey(tea.KeyEnter))
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phasePickSong {
		t.Fatalf("expected song menu after result, got phase %d", p.phase)
	}
}

func TestResultEscPopsScreen(t *testing.T) {
	p, _ := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	typeScore(t, p, "50")
	p.Update(specialKey(tea.KeyEnter))

	_, cmd := p.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc on result should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc on result should pop the screen")
	}
}

func TestThreeStarResult(t *testing.T) {
	p, _ := newTestScreen()

	p.Update(songChosenMsg{SongID: "twinkle"})
	typeScore(t, p, "100")
	p.Update(specialKey(tea.KeyEnter))

	if !p.result.IsThreeStar {
		t.Error("score 100 should be a three-star practice")
	}
}
