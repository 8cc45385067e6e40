package engine

import "github.com/splitpine/walkabout/geom"

// Image is a bitmap with a screen position. Backgrounds and single-sprite
// obstacles are Images; its bounding box covers the full bitmap.
type Image struct {
	bitmap Bitmap
	box    geom.Rect
}

// NewImage places bitmap with its top-left corner at position.
func NewImage(bitmap Bitmap, position geom.Point) *Image {
	width, height := bitmap.Size()
	return &Image{
		bitmap: bitmap,
		box:    geom.Rect{X: position.X, Y: position.Y, Width: width, Height: height},
	}
}

// Draw paints the whole bitmap at its current position.
func (i *Image) Draw(r Renderer) {
	r.DrawEntireImage(i.bitmap, geom.Point{X: i.box.X, Y: i.box.Y})
}

// BoundingBox returns the image's current screen rectangle.
func (i *Image) BoundingBox() geom.Rect {
	return i.box
}

// MoveHorizontally shifts the image by distance pixels.
func (i *Image) MoveHorizontally(distance int) {
	i.box.X += distance
}

// SetX places the left edge at x.
func (i *Image) SetX(x int) {
	i.box.X = x
}

// Right returns the x coordinate of the right edge.
func (i *Image) Right() int {
	return i.box.Right()
}
