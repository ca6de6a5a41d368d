package coach

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDSource mints identities for generated workouts.
type IDSource interface {
	NewID() string
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// UUIDSource is the production IDSource.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// CounterSource yields "1", "2", ... and is safe for concurrent use.
type CounterSource struct {
	n atomic.Uint64
}

func (c *CounterSource) NewID() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
