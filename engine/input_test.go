package engine

import "testing"

func TestKeyStateTracksPressAndRelease(t *testing.T) {
	state := NewKeyState()
	if state.IsPressed("ArrowRight") {
		t.Fatal("expected fresh snapshot to report nothing pressed")
	}

	state.apply(KeyEvent{Code: "ArrowRight", Pressed: true})
	if !state.IsPressed("ArrowRight") {
		t.Fatal("expected key to be pressed after a press event")
	}

	state.apply(KeyEvent{Code: "ArrowRight", Pressed: false})
	if state.IsPressed("ArrowRight") {
		t.Fatal("expected key to be released after a release event")
	}
}

func TestKeyQueueDropsWhenFull(t *testing.T) {
	queue := NewKeyQueue(2)

	if !queue.Push(KeyEvent{Code: "a", Pressed: true}) {
		t.Fatal("expected first push to fit")
	}
	if !queue.Push(KeyEvent{Code: "b", Pressed: true}) {
		t.Fatal("expected second push to fit")
	}
	if queue.Push(KeyEvent{Code: "c", Pressed: true}) {
		t.Fatal("expected third push to be dropped")
	}

	state := NewKeyState()
	queue.Drain(state)
	if !state.IsPressed("a") || !state.IsPressed("b") {
		t.Fatal("expected retained events to reach the snapshot")
	}
	if state.IsPressed("c") {
		t.Fatal("expected dropped event to never reach the snapshot")
	}
}

func TestKeyQueueDrainEmptiesTheQueue(t *testing.T) {
	queue := NewKeyQueue(4)
	queue.Push(KeyEvent{Code: "a", Pressed: true})

	state := NewKeyState()
	queue.Drain(state)
	queue.Drain(NewKeyState())

	if !state.IsPressed("a") {
		t.Fatal("expected first drain to apply the event")
	}
	if !queue.Push(KeyEvent{Code: "b", Pressed: true}) {
		t.Fatal("expected capacity back after drain")
	}
}
