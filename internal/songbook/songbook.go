// Package songbook holds the static catalog of practice pieces. The
// progression engine accepts any song ID; the catalog exists for menus
// and display names.
package songbook

// Song is a single practice piece.
type Song struct {
	ID         string
	Title      string
	Composer   string
	Difficulty int // 1 (open strings) to 5 (advanced)
}

var songs = []Song{
	{ID: "twinkle", Title: "Twinkle, Twinkle, Little Star", Composer: "Traditional", Difficulty: 1},
	{ID: "lightly-row", Title: "Lightly Row", Composer: "Traditional", Difficulty: 1},
	{ID: "song-of-the-wind", Title: "Song of the Wind", Composer: "Traditional", Difficulty: 1},
	{ID: "ode-to-joy", Title: "Ode to Joy", Composer: "Beethoven", Difficulty: 2},
	{ID: "long-long-ago", Title: "Long, Long Ago", Composer: "Bayly", Difficulty: 2},
	{ID: "minuet-1", Title: "Minuet No. 1", Composer: "Bach", Difficulty: 3},
	{ID: "minuet-2", Title: "Minuet No. 2", Composer: "Bach", Difficulty: 3},
	{ID: "gavotte", Title: "Gavotte", Composer: "Gossec", Difficulty: 4},
	{ID: "bourree", Title: "Bourrée", Composer: "Handel", Difficulty: 4},
	{ID: "concerto-a-minor", Title: "Concerto in A Minor, 1st Mvt.", Composer: "Vivaldi", Difficulty: 5},
	{ID: "meditation", Title: "Méditation from Thaïs", Composer: "Massenet", Difficulty: 5},
	{ID: "czardas", Title: "Czardas", Composer: "Monti", Difficulty: 5},
}

// All returns every song in catalog order (easiest first).
func All() []Song {
	out := make([]Song, len(songs))
	copy(out, songs)
	return out
}

// ByID returns the song with the given ID, or nil if unknown.
func ByID(id string) *Song {
	for i := range songs {
		if songs[i].ID == id {
			return &songs[i]
		}
	}
	return nil
}

// Title returns the display title for a song ID, falling back to the
// raw ID for songs outside the catalog.
func Title(id string) string {
	if s := ByID(id); s != nil {
		return s.Title
	}
	return id
}

// DifficultyStars renders difficulty as a fixed-width star gauge.
func DifficultyStars(d int) string {
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	stars := ""
	for i := 1; i <= 5; i++ {
		if i <= d {
			stars += "★"
		} else {
			stars += "☆"
		}
	}
	return stars
}
