package draft

import "github.com/gofrs/uuid"

// IDGenerator produces unique opaque ids for sessions and questions.
// Only the uniqueness contract matters to callers.
type IDGenerator func() string

func UUIDGenerator() string {
	return uuid.Must(uuid.NewV4()).String()
}
