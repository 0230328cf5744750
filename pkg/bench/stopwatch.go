package bench

import "time"

// Stopwatch is the wall-clock TimeSource used for real benchmark runs.
// Tests substitute a fake so reports are reproducible.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.running = true
}

func (s *Stopwatch) Stop() {
	if s.running {
		s.elapsed = time.Since(s.start)
		s.running = false
	}
}

// Elapsed returns the time between the last Start and Stop. While running
// it returns the time since Start.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.start)
	}
	return s.elapsed
}
