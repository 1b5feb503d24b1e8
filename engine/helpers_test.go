package engine

import "math/rand"

// scriptedRand replays fixed draws, then falls back to a seeded source
type scriptedRand struct {
	floats []float64
	ints   []int
	calls  int
	fall   *rand.Rand
}

func newScriptedRand(floats []float64, ints []int) *scriptedRand {
	return &scriptedRand{floats: floats, ints: ints, fall: rand.New(rand.NewSource(1))}
}

func (r *scriptedRand) Float64() float64 {
	r.calls++
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.fall.Float64()
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.fall.Intn(n)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// readySession returns a level attempt that has been revealed but not started
func readySession(level int, targetIndex int) Session {
	s := Session{
		Level:         level,
		Circles:       InitializeLevel(level, newScriptedRand(nil, []int{targetIndex})),
		TimeLeft:      15,
		HasSeenTarget: true,
	}
	return s
}

// expiredSession starts s and ticks the countdown to zero
func expiredSession(s Session) Session {
	s, ok := s.Start()
	if !ok {
		panic("expiredSession: start refused")
	}
	for s.IsPlaying {
		s = s.Tick()
	}
	return s
}

func targetID(s Session) int {
	c, _ := s.Target()
	return c.ID
}

func wrongID(s Session) int {
	for _, c := range s.Circles {
		if !c.IsTarget {
			return c.ID
		}
	}
	return -1
}
