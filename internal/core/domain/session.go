package domain

// Session is the in-memory record of whether the admin is logged in and as
// whom. The zero value is the unauthenticated default.
type Session struct {
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Valid reports whether the session satisfies its invariant: an
// authenticated session must carry a non-empty username, and an
// unauthenticated one must not claim a username.
func (s Session) Valid() bool {
	if s.IsAuthenticated {
		return s.Username != ""
	}
	return s.Username == ""
}

// SessionStore persists the single serialized session record under a fixed
// key. Implementations live in internal/core/repository (Core layer).
type SessionStore interface {
	// Load returns the raw stored record.
	// Returns (nil, nil) when no record is stored.
	Load() ([]byte, error)

	// Save writes the record, replacing any previous one.
	Save(record []byte) error

	// Delete removes the record. Deleting an absent record is not an error.
	Delete() error
}
