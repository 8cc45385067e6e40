package obj

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/sprite"
)

// Player is the drawable character: the state machine plus its sprite
// sheet. Movement decisions live in the states; Player maps them onto
// sprites and collision geometry.
type Player struct {
	state State
	sheet *sprite.Sheet
	image engine.Bitmap
	cfg   *config.Config
}

// NewPlayer spawns the character in its idle state.
func NewPlayer(sheet *sprite.Sheet, image engine.Bitmap, cfg *config.Config, jump engine.SoundPlayer, logger *log.Logger) *Player {
	return &Player{
		state: NewIdle(cfg, jump, logger),
		sheet: sheet,
		image: image,
		cfg:   cfg,
	}
}

// FrameName builds the atlas name a frame counter value displays, such
// as "Run (3).png". The counter advances every tick; the displayed
// number advances every ticksPerFrame ticks.
func FrameName(animation string, frame, ticksPerFrame int) string {
	return fmt.Sprintf("%s (%d).png", animation, frame/ticksPerFrame+1)
}

// AnimationFrames lists every atlas frame name the state machine can
// display under cfg, one entry per name.
func AnimationFrames(cfg *config.Config) []string {
	groups := []struct {
		animation string
		count     int
	}{
		{idleAnimation, cfg.Animation.IdleFrames},
		{runAnimation, cfg.Animation.RunningFrames},
		{slideAnimation, cfg.Animation.SlidingFrames},
		{jumpAnimation, cfg.Animation.JumpingFrames},
		{deadAnimation, cfg.Animation.FallingFrames},
	}

	var names []string
	seen := map[string]bool{}
	for _, group := range groups {
		// The counter occupies [0, count] inclusive before wrapping.
		for frame := 0; frame <= group.count; frame++ {
			name := FrameName(group.animation, frame, cfg.Animation.TicksPerFrame)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// FrameName returns the atlas frame the current state displays.
func (p *Player) FrameName() string {
	return FrameName(p.state.AnimationName(), p.state.Context().Frame, p.cfg.Animation.TicksPerFrame)
}

func (p *Player) currentSprite() (sprite.Cell, bool) {
	return p.sheet.Cell(p.FrameName())
}

func (p *Player) destinationBox(cell sprite.Cell) geom.Rect {
	ctx := p.state.Context()
	return geom.Rect{
		X:      ctx.Position.X + cell.SpriteSourceSize.X,
		Y:      ctx.Position.Y + cell.SpriteSourceSize.Y,
		Width:  cell.Frame.W,
		Height: cell.Frame.H,
	}
}

// DestinationBox is the screen rectangle the current sprite covers.
func (p *Player) DestinationBox() (geom.Rect, error) {
	cell, ok := p.currentSprite()
	if !ok {
		return geom.Rect{}, fmt.Errorf("obj: sheet has no frame %q", p.FrameName())
	}
	return p.destinationBox(cell), nil
}

// BoundingBox is the collision rectangle: the drawn box shrunk by the
// configured insets. Without a current sprite it is the zero rectangle,
// which intersects nothing.
func (p *Player) BoundingBox() geom.Rect {
	cell, ok := p.currentSprite()
	if !ok {
		return geom.Rect{}
	}
	box := p.destinationBox(cell)
	inset := p.cfg.Hitbox
	return geom.Rect{
		X:      box.X + inset.XOffset,
		Y:      box.Y + inset.YOffset,
		Width:  box.Width - inset.WidthOffset,
		Height: box.Height - inset.YOffset,
	}
}

// Draw paints the current frame and its collision box.
func (p *Player) Draw(r engine.Renderer) error {
	cell, ok := p.currentSprite()
	if !ok {
		return fmt.Errorf("obj: sheet has no frame %q", p.FrameName())
	}

	r.DrawImage(p.image, cell.Frame.Rect(), p.destinationBox(cell))
	r.DrawBoundingBox(p.BoundingBox())
	return nil
}

// Update advances the character one fixed step.
func (p *Player) Update() {
	p.state = p.state.Transition(Update{})
}

// RunRight starts the character running.
func (p *Player) RunRight() {
	p.state = p.state.Transition(Run{})
}

// Slide ducks the character.
func (p *Player) Slide() {
	p.state = p.state.Transition(Slide{})
}

// Jump launches the character.
func (p *Player) Jump() {
	p.state = p.state.Transition(Jump{})
}

// LandOn plants the character's feet at groundHeight.
func (p *Player) LandOn(groundHeight int) {
	p.state = p.state.Transition(Land{Height: groundHeight})
}

// KnockOut throws the character into its dying fall.
func (p *Player) KnockOut() {
	p.state = p.state.Transition(KnockOut{})
}

// WalkingSpeed is the character's horizontal speed. The world scrolls
// left by this amount each tick.
func (p *Player) WalkingSpeed() int {
	return p.state.Context().Velocity.X
}

// VelocityY is the character's vertical velocity.
func (p *Player) VelocityY() int {
	return p.state.Context().Velocity.Y
}

// PosY is the top of the character's untrimmed bounds.
func (p *Player) PosY() int {
	return p.state.Context().Position.Y
}
