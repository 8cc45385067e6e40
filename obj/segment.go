package obj

import (
	"math/rand"
	"time"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
)

// Generator stamps out obstacle segments ahead of the character. It owns
// its randomness source, so fixing the seed reproduces a run exactly.
type Generator struct {
	rng   *rand.Rand
	stone engine.Bitmap
	tiles *engine.SpriteSheet
	cfg   *config.Config
}

// NewGenerator builds a generator over the stone bitmap and tile sheet.
// A zero seed picks a time-based one.
func NewGenerator(stone engine.Bitmap, tiles *engine.SpriteSheet, cfg *config.Config, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		stone: stone,
		tiles: tiles,
		cfg:   cfg,
	}
}

// Next stamps a uniformly chosen segment template keyed to offsetX.
func (g *Generator) Next(offsetX int) []Obstacle {
	if g.rng.Intn(2) == 0 {
		return g.StoneAndPlatform(offsetX)
	}
	return g.PlatformAndStone(offsetX)
}

// StoneAndPlatform lays a ground stone followed by a low platform: jump
// the stone, then jump onto the platform.
func (g *Generator) StoneAndPlatform(offsetX int) []Obstacle {
	seg := g.cfg.Segments
	return []Obstacle{
		NewBarrier(engine.NewImage(g.stone, geom.Point{
			X: offsetX + seg.FirstOffset,
			Y: seg.StoneY,
		})),
		g.floatingPlatform(geom.Point{
			X: offsetX + seg.SecondOffset,
			Y: seg.LowPlatformY,
		}),
	}
}

// PlatformAndStone lays a high platform followed by a ground stone: duck
// under or run over the platform, then jump the stone.
func (g *Generator) PlatformAndStone(offsetX int) []Obstacle {
	seg := g.cfg.Segments
	return []Obstacle{
		g.floatingPlatform(geom.Point{
			X: offsetX + seg.FirstOffset,
			Y: seg.HighPlatformY,
		}),
		NewBarrier(engine.NewImage(g.stone, geom.Point{
			X: offsetX + seg.SecondOffset,
			Y: seg.StoneY,
		})),
	}
}

func (g *Generator) floatingPlatform(position geom.Point) *Platform {
	boxes := make([]geom.Rect, len(g.cfg.Platform.Boxes))
	for i, box := range g.cfg.Platform.Boxes {
		boxes[i] = box.Rect()
	}
	return NewPlatform(g.tiles, position, g.cfg.Platform.Sprites, boxes)
}

// Rightmost returns the largest right edge among obstacles, or zero when
// there are none.
func Rightmost(obstacles []Obstacle) int {
	if len(obstacles) == 0 {
		return 0
	}
	right := obstacles[0].Right()
	for _, obstacle := range obstacles[1:] {
		if r := obstacle.Right(); r > right {
			right = r
		}
	}
	return right
}
