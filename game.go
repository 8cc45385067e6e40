package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/walk"
)

// Host drives the simulation from ebiten's callbacks. Each Update is
// one host frame: key edges are queued, tuning reloads are applied, and
// the loop runs as many fixed steps as wall time demands.
type Host struct {
	loop    *engine.Loop
	session *walk.Game
	queue   *engine.KeyQueue
	keys    *keyMap
	cfg     *config.Config
	watcher *config.Watcher
	log     *log.Logger

	drawErr error
}

func newHost(session *walk.Game, cfg *config.Config, watcher *config.Watcher, logger *log.Logger) (*Host, error) {
	keys, err := newKeyMap(cfg.Keys)
	if err != nil {
		return nil, err
	}

	queue := engine.NewKeyQueue(cfg.Input.QueueCapacity)
	return &Host{
		loop:    engine.NewLoop(session, queue, newSystemClock()),
		session: session,
		queue:   queue,
		keys:    keys,
		cfg:     cfg,
		watcher: watcher,
		log:     logger,
	}, nil
}

func (h *Host) Update() error {
	// Draw cannot return an error to ebiten; a failure there ends the
	// game on the next tick.
	if h.drawErr != nil {
		return h.drawErr
	}

	h.pollKeys()
	h.reloadTuning()
	h.loop.Frame()
	return nil
}

func (h *Host) pollKeys() {
	for _, b := range h.keys.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			if !h.queue.Push(engine.KeyEvent{Code: b.code, Pressed: true}) {
				h.log.Warn("input queue full, dropping key", "code", b.code)
			}
		}
		if inpututil.IsKeyJustReleased(b.key) {
			h.queue.Push(engine.KeyEvent{Code: b.code, Pressed: false})
		}
	}
}

func (h *Host) reloadTuning() {
	if h.watcher == nil {
		return
	}
	select {
	case path, ok := <-h.watcher.Events:
		if !ok {
			return
		}
		next, err := config.Load(path)
		if err != nil {
			h.log.Warn("tuning reload failed", "error", err)
			return
		}
		keys, err := newKeyMap(next.Keys)
		if err != nil {
			h.log.Warn("tuning reload rejected", "error", err)
			return
		}
		h.session.Retune(next)
		h.keys = keys
	case err, ok := <-h.watcher.Errors:
		if ok {
			h.log.Warn("tuning watcher", "error", err)
		}
	default:
	}
}

func (h *Host) Draw(screen *ebiten.Image) {
	if err := h.loop.Draw(&display{screen: screen, debug: flagDebug}); err != nil && h.drawErr == nil {
		h.drawErr = err
	}
	if flagDebug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.cfg.Window.Width, h.cfg.Window.Height
}

// Close releases the tuning watcher, if any.
func (h *Host) Close() error {
	if h.watcher != nil {
		return h.watcher.Close()
	}
	return nil
}
