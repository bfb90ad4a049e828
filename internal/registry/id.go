package registry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// idSource hands out lexicographically sortable game ids. Monotonic
// entropy keeps ids ordered even within the same millisecond.
type idSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var gameIDs = idSource{
	entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
}

// NewID returns a fresh game id.
func NewID() string {
	gameIDs.mu.Lock()
	defer gameIDs.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), gameIDs.entropy).String()
}
