package hunt

// Indefinite is the duration of a timer that never expires.
const Indefinite = -1

// TickTimer counts simulation ticks up to a duration. A stopped timer keeps
// its progress and continues where it left off when started again.
type TickTimer struct {
	duration int
	elapsed  int
	running  bool
}

// Reset stops the timer and rewinds it with a new duration.
func (t *TickTimer) Reset(duration int) {
	t.duration = duration
	t.elapsed = 0
	t.running = false
}

// Start lets the timer count on subsequent ticks.
func (t *TickTimer) Start() {
	t.running = true
}

// Restart resets the timer with a new duration and starts it.
func (t *TickTimer) Restart(duration int) {
	t.Reset(duration)
	t.Start()
}

// Stop pauses the timer.
func (t *TickTimer) Stop() {
	t.running = false
}

// Tick advances a running, unexpired timer by one tick.
func (t *TickTimer) Tick() {
	if t.running && !t.Expired() {
		t.elapsed++
	}
}

// Running reports whether the timer counts ticks.
func (t *TickTimer) Running() bool {
	return t.running
}

// Expired reports whether a finite timer has reached its duration.
func (t *TickTimer) Expired() bool {
	return t.duration != Indefinite && t.elapsed >= t.duration
}

// Duration returns the configured duration.
func (t *TickTimer) Duration() int {
	return t.duration
}

// Elapsed returns the ticks counted since the last reset.
func (t *TickTimer) Elapsed() int {
	return t.elapsed
}

// Remaining returns the ticks left, or Indefinite for endless timers.
func (t *TickTimer) Remaining() int {
	if t.duration == Indefinite {
		return Indefinite
	}
	return t.duration - t.elapsed
}
