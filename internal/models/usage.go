package models

// Session player count limits: singles or doubles.
const (
	MinSessionPlayers = 2
	MaxSessionPlayers = 4
)

// UsageSession records the shuttlecocks used in one game.
// The quantity is shared equally by all of its players.
// Sessions are immutable once logged; they can only be deleted.
type UsageSession struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Date is the play date (YYYY-MM-DD).
	Date string

	// PlayerIDs are the players of the game, in the order they were entered.
	PlayerIDs []string

	// Quantity is the number of shuttlecocks used. Always positive.
	Quantity int64

	// MatchNumber is the optional ordinal of the game within the day (0 if unset).
	MatchNumber int

	// CreatedAt is the Unix timestamp when the session was logged.
	CreatedAt int64
}
