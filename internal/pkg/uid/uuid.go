package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUID strings used as correlation ids and
// Message-ID local parts.
type UUID struct {
	gen func() (uuid.UUID, error)
}

// NewUUID returns a UUIDv7 generator.
func NewUUID() *UUID {
	return &UUID{gen: uuid.NewV7}
}

// Generate returns a new UUID string, falling back to a random v4 when the
// time-ordered source fails.
func (u *UUID) Generate() string {
	gen := uuid.NewV7
	if u != nil && u.gen != nil {
		gen = u.gen
	}

	id, err := gen()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
