package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
)

// display paints one simulation frame onto an ebiten screen. Bounding
// boxes are only stroked in debug mode.
type display struct {
	screen *ebiten.Image
	debug  bool
}

func (d *display) Clear(bounds geom.Rect) {
	vector.DrawFilledRect(d.screen,
		float32(bounds.X), float32(bounds.Y),
		float32(bounds.Width), float32(bounds.Height),
		colornames.White, false)
}

func (d *display) DrawImage(img engine.Bitmap, source, destination geom.Rect) {
	tex, ok := img.(*texture)
	if !ok {
		return
	}

	sub := tex.image.SubImage(image.Rect(source.X, source.Y, source.Right(), source.Bottom())).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if source.Width != destination.Width || source.Height != destination.Height {
		op.GeoM.Scale(
			float64(destination.Width)/float64(source.Width),
			float64(destination.Height)/float64(source.Height),
		)
	}
	op.GeoM.Translate(float64(destination.X), float64(destination.Y))
	d.screen.DrawImage(sub, op)
}

func (d *display) DrawEntireImage(img engine.Bitmap, position geom.Point) {
	tex, ok := img.(*texture)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(position.X), float64(position.Y))
	d.screen.DrawImage(tex.image, op)
}

func (d *display) DrawBoundingBox(box geom.Rect) {
	if !d.debug {
		return
	}
	vector.StrokeRect(d.screen,
		float32(box.X), float32(box.Y),
		float32(box.Width), float32(box.Height),
		1, colornames.Red, false)
}
