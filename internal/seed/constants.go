package seed

// Generation defaults.
const (
	DefaultSeed              = 2025
	DefaultPitchesPerPitcher = 300
	DefaultContactRate       = 0.2
	DefaultDBPath            = "pitches.db"
)

// Player ids start in the range MLB uses for active players.
const firstPlayerID = 600000

// insertBatchSize bounds the rows written per transaction.
const insertBatchSize = 1000

// Arsenal size bounds per pitcher.
const (
	minArsenal = 2
	maxArsenal = 5
)
