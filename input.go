package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/splitpine/walkabout/config"
)

// keyCodes maps KeyboardEvent-style codes, the currency of the tuning
// file, to ebiten keys.
var keyCodes = map[string]ebiten.Key{
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"Space":      ebiten.KeySpace,
	"Enter":      ebiten.KeyEnter,
	"Tab":        ebiten.KeyTab,
	"Escape":     ebiten.KeyEscape,
	"ShiftLeft":  ebiten.KeyShiftLeft,
	"ShiftRight": ebiten.KeyShiftRight,
}

func init() {
	for i := 0; i < 26; i++ {
		keyCodes[fmt.Sprintf("Key%c", 'A'+i)] = ebiten.KeyA + ebiten.Key(i)
	}
	for i := 0; i < 10; i++ {
		keyCodes[fmt.Sprintf("Digit%d", i)] = ebiten.KeyDigit0 + ebiten.Key(i)
	}
}

type binding struct {
	code string
	key  ebiten.Key
}

// keyMap is the set of bound keys the host polls each frame. Unbound
// keys never reach the simulation.
type keyMap struct {
	bindings []binding
}

func newKeyMap(keys config.Keys) (*keyMap, error) {
	m := &keyMap{}
	for _, code := range []string{keys.Run, keys.Slide, keys.Jump} {
		key, ok := keyCodes[code]
		if !ok {
			return nil, fmt.Errorf("unknown key code %q in tuning", code)
		}
		m.bindings = append(m.bindings, binding{code: code, key: key})
	}
	return m, nil
}
