package obj

import (
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/sprite"
)

// Body is anything obstacles can disturb. Player implements it; the
// indirection keeps collision rules testable without a full character.
type Body interface {
	BoundingBox() geom.Rect
	VelocityY() int
	PosY() int
	LandOn(groundHeight int)
	KnockOut()
}

// Obstacle is a world feature the character can collide with. Obstacles
// scroll with the world and judge their own intersections.
type Obstacle interface {
	CheckIntersection(body Body)
	Draw(r engine.Renderer)
	MoveHorizontally(distance int)
	Right() int
}

// Barrier knocks the body out on any contact.
type Barrier struct {
	image *engine.Image
}

// NewBarrier wraps a positioned image as a solid obstacle.
func NewBarrier(image *engine.Image) *Barrier {
	return &Barrier{image: image}
}

func (b *Barrier) CheckIntersection(body Body) {
	if body.BoundingBox().Intersects(b.image.BoundingBox()) {
		body.KnockOut()
	}
}

func (b *Barrier) Draw(r engine.Renderer) {
	b.image.Draw(r)
}

func (b *Barrier) MoveHorizontally(distance int) {
	b.image.MoveHorizontally(distance)
}

func (b *Barrier) Right() int {
	return b.image.Right()
}

// Platform is a floating strip of tiles. A body falling onto it lands on
// top; any other contact knocks the body out.
type Platform struct {
	sheet         *engine.SpriteSheet
	position      geom.Point
	sprites       []sprite.Cell
	boundingBoxes []geom.Rect
}

// NewPlatform assembles a platform at position from named tiles. Boxes
// are given relative to position. Sprite names missing from the sheet
// are skipped; content preflight keeps that from happening in practice.
func NewPlatform(sheet *engine.SpriteSheet, position geom.Point, spriteNames []string, boxes []geom.Rect) *Platform {
	sprites := make([]sprite.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}

	absolute := make([]geom.Rect, len(boxes))
	for i, box := range boxes {
		absolute[i] = geom.Rect{
			X:      box.X + position.X,
			Y:      box.Y + position.Y,
			Width:  box.Width,
			Height: box.Height,
		}
	}

	return &Platform{
		sheet:         sheet,
		position:      position,
		sprites:       sprites,
		boundingBoxes: absolute,
	}
}

// intersects returns the first bounding box overlapping rect.
func (p *Platform) intersects(rect geom.Rect) (geom.Rect, bool) {
	for _, box := range p.boundingBoxes {
		if box.Intersects(rect) {
			return box, true
		}
	}
	return geom.Rect{}, false
}

// CheckIntersection lands a descending body that is still above the
// platform's origin on the overlapped box's top edge; any other contact
// knocks the body out.
func (p *Platform) CheckIntersection(body Body) {
	box, ok := p.intersects(body.BoundingBox())
	if !ok {
		return
	}
	if body.VelocityY() > 0 && body.PosY() < p.position.Y {
		body.LandOn(box.Y)
	} else {
		body.KnockOut()
	}
}

func (p *Platform) Draw(r engine.Renderer) {
	x := 0
	for _, cell := range p.sprites {
		p.sheet.Draw(r,
			cell.Frame.Rect(),
			geom.Rect{
				X:      p.position.X + x,
				Y:      p.position.Y,
				Width:  cell.Frame.W,
				Height: cell.Frame.H,
			},
		)
		x += cell.Frame.W
	}
	for _, box := range p.boundingBoxes {
		r.DrawBoundingBox(box)
	}
}

func (p *Platform) MoveHorizontally(distance int) {
	p.position.X += distance
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].X += distance
	}
}

// Right is the right edge of the platform's last bounding box.
func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}
