package songbook

import "testing"

func TestAllNonEmptyAndUnique(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}
	seen := make(map[string]bool)
	for _, s := range all {
		if s.ID == "" || s.Title == "" {
			t.Errorf("song with empty fields: %+v", s)
		}
		if seen[s.ID] {
			t.Errorf("duplicate song ID %q", s.ID)
		}
		seen[s.ID] = true
		if s.Difficulty < 1 || s.Difficulty > 5 {
			t.Errorf("song %q difficulty %d out of range", s.ID, s.Difficulty)
		}
	}
}

func TestByID(t *testing.T) {
	if s := ByID("twinkle"); s == nil || s.Composer != "Traditional" {
		t.Errorf("ByID(twinkle) = %+v", s)
	}
	if s := ByID("nope"); s != nil {
		t.Errorf("ByID(nope) = %+v, want nil", s)
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	if got := Title("my-own-recording"); got != "my-own-recording" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("gavotte"); got != "Gavotte" {
		t.Errorf("Title = %q", got)
	}
}

func TestDifficultyStars(t *testing.T) {
	tests := []struct {
		d    int
		want string
	}{
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{0, "★☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := DifficultyStars(tt.d); got != tt.want {
			t.Errorf("DifficultyStars(%d) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
