package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator allocates project and entry identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// TimestampPrecision is the finest resolution every store round-trips.
// Postgres timestamptz keeps microseconds.
const TimestampPrecision = time.Microsecond

// NormalizeTime converts t to UTC at TimestampPrecision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return NormalizeTime(time.Now()) }

// UUIDv7Generator issues time-ordered random identifiers.
type UUIDv7Generator struct{}

func (UUIDv7Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
