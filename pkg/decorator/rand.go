package decorator

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source consumed by stages. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0,n). It panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a thread-confined source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand returns a source safe for use from multiple goroutines.
// A zero seed uses the current time.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{rnd: NewRand(seed)}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// coin reports heads with probability 0.5.
func coin(r Rand) bool {
	return r.Intn(2) == 0
}
