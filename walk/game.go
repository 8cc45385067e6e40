// Package walk is the play session: asset loading, the scrolling world,
// the character, and obstacle generation, driven one fixed step at a
// time by the engine loop.
package walk

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/obj"
)

// Game is one play session. A session starts unloaded; Initialize
// fetches every asset and builds the world. Until then, updates and
// draws are no-ops.
type Game struct {
	loader engine.Loader
	cfg    *config.Config
	log    *log.Logger
	seed   int64

	walk *Walk
}

// NewGame returns an unloaded session. A zero seed randomizes obstacle
// generation; any other value reproduces a run exactly.
func NewGame(loader engine.Loader, cfg *config.Config, logger *log.Logger, seed int64) *Game {
	return &Game{
		loader: loader,
		cfg:    cfg,
		log:    logger,
		seed:   seed,
	}
}

// Initialize loads every asset the session needs, validates the sprite
// atlases against the frames the simulation can request, and builds the
// world. All failures are collected into one error, and the session
// stays unloaded on any of them. Initializing a loaded session is an
// error.
func (g *Game) Initialize() error {
	if g.walk != nil {
		return errors.New("walk: game is already initialized")
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	characterSheet, err := g.loader.Sheet(g.cfg.Assets.CharacterSheet)
	collect(err)
	characterImage, err := g.loader.Image(g.cfg.Assets.CharacterImage)
	collect(err)
	background, err := g.loader.Image(g.cfg.Assets.Background)
	collect(err)
	stone, err := g.loader.Image(g.cfg.Assets.Stone)
	collect(err)
	tileSheet, err := g.loader.Sheet(g.cfg.Assets.TileSheet)
	collect(err)
	tileImage, err := g.loader.Image(g.cfg.Assets.TileImage)
	collect(err)
	jumpSound, err := g.loader.Sound(g.cfg.Assets.JumpSound)
	collect(err)

	if characterSheet != nil {
		collect(ValidateCharacterSheet(characterSheet, g.cfg))
	}
	if tileSheet != nil {
		collect(ValidateTileSheet(tileSheet, g.cfg))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("walk: initialize: %w", err)
	}

	boy := obj.NewPlayer(characterSheet, characterImage, g.cfg, jumpSound, g.log)
	tiles := engine.NewSpriteSheet(tileSheet, tileImage)
	generator := obj.NewGenerator(stone, tiles, g.cfg, g.seed)

	starting := generator.StoneAndPlatform(0)
	backgroundWidth, _ := background.Size()

	g.walk = &Walk{
		boy: boy,
		backgrounds: [2]*engine.Image{
			engine.NewImage(background, geom.Point{X: 0, Y: 0}),
			engine.NewImage(background, geom.Point{X: backgroundWidth, Y: 0}),
		},
		obstacles: starting,
		generator: generator,
		timeline:  obj.Rightmost(starting),
		cfg:       g.cfg,
		log:       g.log,
	}

	g.log.Info("session loaded",
		"obstacles", len(starting),
		"timeline", g.walk.timeline)
	return nil
}

// Update advances the world one fixed step against the input snapshot.
func (g *Game) Update(keys *engine.KeyState) {
	if g.walk == nil {
		return
	}
	g.walk.update(keys)
}

// Draw paints the world back to front.
func (g *Game) Draw(r engine.Renderer) error {
	if g.walk == nil {
		return nil
	}
	return g.walk.draw(r)
}

// Retune applies the live-tunable groups of next to the running session.
func (g *Game) Retune(next *config.Config) {
	if g.cfg.Window != next.Window || g.cfg.Assets != next.Assets {
		g.log.Info("window and asset changes need a restart")
	}
	g.cfg.Retune(next)
	g.log.Info("tuning reloaded")
}
