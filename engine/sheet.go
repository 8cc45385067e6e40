package engine

import (
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/sprite"
)

// SpriteSheet pairs an atlas descriptor with its packed image. Obstacles
// built from atlas tiles share one SpriteSheet.
type SpriteSheet struct {
	sheet  *sprite.Sheet
	bitmap Bitmap
}

// NewSpriteSheet combines a parsed descriptor with its image.
func NewSpriteSheet(sheet *sprite.Sheet, bitmap Bitmap) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, bitmap: bitmap}
}

// Cell returns the named frame and whether it exists.
func (s *SpriteSheet) Cell(name string) (sprite.Cell, bool) {
	return s.sheet.Cell(name)
}

// Draw copies source from the packed image onto destination.
func (s *SpriteSheet) Draw(r Renderer, source, destination geom.Rect) {
	r.DrawImage(s.bitmap, source, destination)
}
