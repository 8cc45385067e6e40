package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/splitpine/walkabout/assets"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/sprite"
)

// texture adapts an *ebiten.Image to the simulation's Bitmap.
type texture struct {
	image *ebiten.Image
}

func (t *texture) Size() (int, int) {
	bounds := t.image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// sound adapts an *audio.Player, rewinding before each play so repeated
// jumps restart the clip.
type sound struct {
	player *audio.Player
}

func (s *sound) Play() error {
	if err := s.player.Rewind(); err != nil {
		return err
	}
	s.player.Play()
	return nil
}

// diskLoader reads content through the assets package.
type diskLoader struct {
	dir string
}

func newLoader(dir string) *diskLoader {
	return &diskLoader{dir: dir}
}

func (l *diskLoader) Image(path string) (engine.Bitmap, error) {
	img, err := assets.Image(l.dir, path)
	if err != nil {
		return nil, err
	}
	return &texture{image: img}, nil
}

func (l *diskLoader) Sheet(path string) (*sprite.Sheet, error) {
	b, err := assets.File(l.dir, path)
	if err != nil {
		return nil, err
	}
	return sprite.Parse(b)
}

func (l *diskLoader) Sound(path string) (engine.SoundPlayer, error) {
	player, err := assets.Sound(l.dir, path)
	if err != nil {
		return nil, err
	}
	return &sound{player: player}, nil
}

// systemClock reports wall time in milliseconds for the frame loop.
type systemClock struct {
	start time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
