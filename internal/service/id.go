package service

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// newID generates a lexicographically sortable entity ID. Sorting by ID
// matches insertion order, which keeps newest-first tiebreaks stable.
func newID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
