package rng

import "fmt"

type span struct{ lo, hi int }

// Script is a Source whose draws are pinned per range. Draws for a range with
// no queued values fall through to Fallback, or to lo when Fallback is nil.
type Script struct {
	queued   map[span][]int
	Fallback Source
}

// NewScript creates an empty script
func NewScript(fallback Source) *Script {
	return &Script{queued: make(map[span][]int), Fallback: fallback}
}

// Push queues values to be returned, in order, for draws over [lo, hi].
func (s *Script) Push(lo, hi int, values ...int) *Script {
	for _, v := range values {
		if v < lo || v > hi {
			panic(fmt.Sprintf("rng: scripted value %d outside [%d, %d]", v, lo, hi))
		}
	}
	k := span{lo, hi}
	s.queued[k] = append(s.queued[k], values...)
	return s
}

// Pending reports how many scripted values for [lo, hi] are still unused
func (s *Script) Pending(lo, hi int) int {
	return len(s.queued[span{lo, hi}])
}

func (s *Script) Int(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	k := span{lo, hi}
	if q := s.queued[k]; len(q) > 0 {
		s.queued[k] = q[1:]
		return q[0]
	}
	if s.Fallback != nil {
		return s.Fallback.Int(lo, hi)
	}
	return lo
}
