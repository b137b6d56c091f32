package export

// progressSchema is the JSON Schema for progress files. It pins the
// allow-listed field set: unknown keys inside progress are rejected so
// a file from a newer, incompatible build fails loudly instead of
// being half-imported.
var progressSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"progress": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"xp":                 map[string]any{"type": "integer", "minimum": 0},
				"level":              map[string]any{"type": "integer", "minimum": 1},
				"streakDays":         map[string]any{"type": "integer", "minimum": 0},
				"bestStreak":         map[string]any{"type": "integer", "minimum": 0},
				"lastPracticeDate":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
				"completedSongs":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"threeStarSongs":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"todayPracticeCount": map[string]any{"type": "integer", "minimum": 0},
				"todayXP":            map[string]any{"type": "integer", "minimum": 0},
				"recentPractice": map[string]any{
					"type":     "array",
					"maxItems": 10,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"songId":    map[string]any{"type": "string"},
							"timestamp": map[string]any{"type": "integer"},
							"score":     map[string]any{"type": "number"},
							"xpEarned":  map[string]any{"type": "integer", "minimum": 0},
						},
						"required":             []any{"songId", "timestamp", "score", "xpEarned"},
						"additionalProperties": false,
					},
				},
				"totalPracticeTime": map[string]any{"type": "integer", "minimum": 0},
				"nickname":          map[string]any{"type": "string"},
				"avatarEmoji":       map[string]any{"type": "string"},
			},
			"required":             []any{"xp", "level", "streakDays", "bestStreak"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"version", "progress"},
	"additionalProperties": false,
}
