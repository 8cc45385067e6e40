// Package engine is the host-independent runtime for the game: the fixed
// timestep loop, the key event queue and snapshot, and the small set of
// interfaces a host must implement (rendering, asset loading, audio, and
// a clock). The simulation in walk and obj builds only against this
// package, so it runs headless under test.
package engine

import (
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/sprite"
)

// Game is a simulation the loop can drive. Initialize loads all content
// before the first step; Update advances one fixed step against the input
// snapshot; Draw paints the current state.
type Game interface {
	Initialize() error
	Update(keys *KeyState)
	Draw(r Renderer) error
}

// Bitmap is a loaded image the renderer can draw.
type Bitmap interface {
	Size() (width, height int)
}

// Renderer draws one frame of output.
type Renderer interface {
	Clear(bounds geom.Rect)
	DrawImage(img Bitmap, source, destination geom.Rect)
	DrawEntireImage(img Bitmap, position geom.Point)
	DrawBoundingBox(box geom.Rect)
}

// SoundPlayer replays one loaded sound effect from its start.
type SoundPlayer interface {
	Play() error
}

// Loader resolves asset paths into ready resources.
type Loader interface {
	Image(path string) (Bitmap, error)
	Sheet(path string) (*sprite.Sheet, error)
	Sound(path string) (SoundPlayer, error)
}

// Clock reports monotonic time in milliseconds.
type Clock interface {
	Now() float64
}
