package obj

import (
	"strings"
	"testing"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/sprite"
)

type stubBitmap struct {
	w, h int
}

func (b stubBitmap) Size() (int, int) { return b.w, b.h }

type fakeRenderer struct {
	cleared []geom.Rect
	images  []geom.Rect
	sources []geom.Rect
	entire  []geom.Point
	boxes   []geom.Rect
}

func (r *fakeRenderer) Clear(bounds geom.Rect) {
	r.cleared = append(r.cleared, bounds)
}

func (r *fakeRenderer) DrawImage(img engine.Bitmap, source, destination geom.Rect) {
	r.sources = append(r.sources, source)
	r.images = append(r.images, destination)
}

func (r *fakeRenderer) DrawEntireImage(img engine.Bitmap, position geom.Point) {
	r.entire = append(r.entire, position)
}

func (r *fakeRenderer) DrawBoundingBox(box geom.Rect) {
	r.boxes = append(r.boxes, box)
}

// characterSheet builds a descriptor holding every frame the machine can
// request, each with the same geometry.
func characterSheet(cfg *config.Config) *sprite.Sheet {
	frames := map[string]sprite.Cell{}
	for _, name := range AnimationFrames(cfg) {
		frames[name] = sprite.Cell{
			Frame:            sprite.SheetRect{X: 2, Y: 3, W: 88, H: 90},
			SpriteSourceSize: sprite.SheetRect{X: 15, Y: 14, W: 88, H: 90},
		}
	}
	return &sprite.Sheet{Frames: frames}
}

func testPlayer(t *testing.T, cfg *config.Config) *Player {
	t.Helper()
	return NewPlayer(characterSheet(cfg), stubBitmap{w: 1024, h: 1024}, cfg, &stubSound{}, discardLogger())
}

func TestPlayerFrameNameAdvances(t *testing.T) {
	cfg := testConfig(t)
	player := testPlayer(t, cfg)

	if got := player.FrameName(); got != "Idle (1).png" {
		t.Fatalf("expected Idle (1).png at spawn, got %q", got)
	}

	for i := 0; i < cfg.Animation.TicksPerFrame; i++ {
		player.Update()
	}
	if got := player.FrameName(); got != "Idle (2).png" {
		t.Fatalf("expected Idle (2).png after %d ticks, got %q", cfg.Animation.TicksPerFrame, got)
	}
}

func TestPlayerBoxes(t *testing.T) {
	cfg := testConfig(t)
	player := testPlayer(t, cfg)

	dst, err := player.DestinationBox()
	if err != nil {
		t.Fatalf("destination box: %v", err)
	}
	want := geom.Rect{
		X:      cfg.Physics.StartingX + 15,
		Y:      cfg.Physics.FloorY + 14,
		Width:  88,
		Height: 90,
	}
	if dst != want {
		t.Fatalf("expected destination %+v, got %+v", want, dst)
	}

	box := player.BoundingBox()
	wantBox := geom.Rect{
		X:      dst.X + cfg.Hitbox.XOffset,
		Y:      dst.Y + cfg.Hitbox.YOffset,
		Width:  dst.Width - cfg.Hitbox.WidthOffset,
		Height: dst.Height - cfg.Hitbox.YOffset,
	}
	if box != wantBox {
		t.Fatalf("expected bounding box %+v, got %+v", wantBox, box)
	}
}

func TestPlayerDrawUsesAtlasGeometry(t *testing.T) {
	cfg := testConfig(t)
	player := testPlayer(t, cfg)
	r := &fakeRenderer{}

	if err := player.Draw(r); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(r.sources) != 1 || len(r.images) != 1 {
		t.Fatalf("expected one sprite draw, got %d", len(r.sources))
	}
	if r.sources[0] != (geom.Rect{X: 2, Y: 3, Width: 88, Height: 90}) {
		t.Fatalf("expected atlas source rect, got %+v", r.sources[0])
	}
	if len(r.boxes) != 1 {
		t.Fatalf("expected one bounding box draw, got %d", len(r.boxes))
	}
}

func TestPlayerMissingFrameSurfaces(t *testing.T) {
	cfg := testConfig(t)
	player := NewPlayer(&sprite.Sheet{Frames: map[string]sprite.Cell{}},
		stubBitmap{w: 1024, h: 1024}, cfg, &stubSound{}, discardLogger())

	if err := player.Draw(&fakeRenderer{}); err == nil {
		t.Fatal("expected draw to fail without the frame")
	} else if !strings.Contains(err.Error(), "Idle (1).png") {
		t.Fatalf("expected the frame name in the error, got %v", err)
	}

	if _, err := player.DestinationBox(); err == nil {
		t.Fatal("expected destination box to fail without the frame")
	}
	if box := player.BoundingBox(); box != (geom.Rect{}) {
		t.Fatalf("expected zero bounding box, got %+v", box)
	}
}

func TestPlayerKnockOutStopsTheWorldScroll(t *testing.T) {
	cfg := testConfig(t)
	player := testPlayer(t, cfg)

	player.RunRight()
	if player.WalkingSpeed() != cfg.Physics.RunningSpeed {
		t.Fatalf("expected walking speed %d, got %d", cfg.Physics.RunningSpeed, player.WalkingSpeed())
	}

	player.KnockOut()
	if player.WalkingSpeed() != 0 {
		t.Fatalf("expected walking speed 0 after knockout, got %d", player.WalkingSpeed())
	}
}

func TestAnimationFramesCoverEveryCounterValue(t *testing.T) {
	cfg := testConfig(t)
	names := AnimationFrames(cfg)

	// 10 idle, 8 run, 5 slide, 12 jump, 10 dead cells under the default
	// tuning.
	if len(names) != 45 {
		t.Fatalf("expected 45 distinct frame names, got %d", len(names))
	}

	wantPresent := []string{
		"Idle (1).png", "Idle (10).png",
		"Run (8).png",
		"Slide (5).png",
		"Jump (12).png",
		"Dead (10).png",
	}
	set := map[string]bool{}
	for _, name := range names {
		set[name] = true
	}
	for _, name := range wantPresent {
		if !set[name] {
			t.Fatalf("expected %q among the frame names", name)
		}
	}
}
