package mixer

import "sync"

// LockedRand serializes draws so effects built from one source can run concurrently.
// *rand.Rand is not safe for concurrent use.
type LockedRand struct {
	sync.Mutex
	rng Rand
}

func NewLockedRand(rng Rand) *LockedRand {
	return &LockedRand{rng: rng}
}

func (r *LockedRand) Intn(n int) int {
	r.Lock()
	defer r.Unlock()

	return r.rng.Intn(n)
}
