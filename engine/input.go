package engine

// KeyEvent is one key press or release reported by the host. Code follows
// the KeyboardEvent.code convention ("ArrowRight", "Space", ...).
type KeyEvent struct {
	Code    string
	Pressed bool
}

// KeyState is the input snapshot the simulation reads during an update.
// Only the loop mutates it, by draining queued events between frames, so
// every step within one frame sees the same keys.
type KeyState struct {
	pressed map[string]bool
}

// NewKeyState returns an empty snapshot.
func NewKeyState() *KeyState {
	return &KeyState{pressed: map[string]bool{}}
}

// IsPressed reports whether the key with the given code is held down.
func (s *KeyState) IsPressed(code string) bool {
	return s.pressed[code]
}

func (s *KeyState) apply(ev KeyEvent) {
	if ev.Pressed {
		s.pressed[ev.Code] = true
	} else {
		delete(s.pressed, ev.Code)
	}
}

// KeyQueue carries key events from the host callback to the loop. It is
// bounded: when full, Push drops the event and reports false, and the
// snapshot converges on a later repeat or release.
type KeyQueue struct {
	events chan KeyEvent
}

// DefaultQueueCapacity bounds the queue when no capacity is configured.
const DefaultQueueCapacity = 64

// NewKeyQueue returns a queue holding up to capacity pending events.
func NewKeyQueue(capacity int) *KeyQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &KeyQueue{events: make(chan KeyEvent, capacity)}
}

// Push enqueues without blocking.
func (q *KeyQueue) Push(ev KeyEvent) bool {
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// Drain applies every pending event to the snapshot in arrival order.
func (q *KeyQueue) Drain(state *KeyState) {
	for {
		select {
		case ev := <-q.events:
			state.apply(ev)
		default:
			return
		}
	}
}
