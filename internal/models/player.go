package models

// Player represents a club player in the roster.
// The roster is owned by the member management screens; settlement only reads it.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string

	// Name is the display name.
	Name string

	// IsMember is true for paying club members. Non-members pay the court fee.
	// Settlements always use the current value, not the value at play time.
	IsMember bool

	// Grade is a free-form skill label (e.g. "A", "B+").
	Grade string

	// CreatedAt is the Unix timestamp when the player was added.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}
