package store

import (
	"fmt"

	"github.com/google/uuid"
)

// maxIDAttempts bounds how many random ids are tried before giving up.
const maxIDAttempts = 32

// idGenerator produces UUIDv4 ids that are unused within a partition.
type idGenerator struct {
	newUUID func() (uuid.UUID, error)
	taken   func(partition, id string) bool
}

func newIDGenerator(taken func(partition, id string) bool) *idGenerator {
	return &idGenerator{newUUID: uuid.NewRandom, taken: taken}
}

func (g *idGenerator) generate(partition string) (string, error) {
	for range maxIDAttempts {
		u, err := g.newUUID()
		if err != nil {
			return "", fmt.Errorf("generate uuid: %w", err)
		}

		id := u.String()
		if !g.taken(partition, id) && !g.taken(partition, id+secretsSuffix) {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

// ValidateID reports whether candidate is a canonical lowercase UUIDv4 in
// its 36-character hyphenated form.
func ValidateID(candidate string) bool {
	u, err := uuid.Parse(candidate)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.String() == candidate
}
