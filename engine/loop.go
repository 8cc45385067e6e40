package engine

// FrameSize is the fixed simulation step in milliseconds.
const FrameSize = 1.0 / 60.0 * 1000.0

// Loop drives a Game at a fixed timestep from a variable-rate host
// callback. Wall time is banked in an accumulator; each callback runs as
// many whole steps as the bank covers and keeps the remainder.
type Loop struct {
	game  Game
	queue *KeyQueue
	keys  *KeyState
	clock Clock
	last  float64
	acc   float64
}

// NewLoop returns a loop over game, reading input from queue and time
// from clock.
func NewLoop(game Game, queue *KeyQueue, clock Clock) *Loop {
	return &Loop{
		game:  game,
		queue: queue,
		keys:  NewKeyState(),
		clock: clock,
		last:  clock.Now(),
	}
}

// Frame runs one host callback: pending key events are drained into the
// snapshot first, then the game is stepped once per whole frame of banked
// time. It returns the number of steps taken, which may be zero.
func (l *Loop) Frame() int {
	l.queue.Drain(l.keys)

	now := l.clock.Now()
	l.acc += now - l.last
	steps := 0
	for l.acc > FrameSize {
		l.game.Update(l.keys)
		l.acc -= FrameSize
		steps++
	}
	l.last = now
	return steps
}

// Draw paints the game's current state, exactly once per host callback.
func (l *Loop) Draw(r Renderer) error {
	return l.game.Draw(r)
}
