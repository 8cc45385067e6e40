package walk

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/obj"
	"github.com/splitpine/walkabout/sprite"
)

type stubBitmap struct {
	w, h int
}

func (b stubBitmap) Size() (int, int) { return b.w, b.h }

type stubSound struct {
	plays int
}

func (s *stubSound) Play() error {
	s.plays++
	return nil
}

type fakeRenderer struct {
	ops     []string
	cleared []geom.Rect
	images  []geom.Rect
	entire  []geom.Point
	boxes   []geom.Rect
}

func (r *fakeRenderer) Clear(bounds geom.Rect) {
	r.ops = append(r.ops, "clear")
	r.cleared = append(r.cleared, bounds)
}

func (r *fakeRenderer) DrawImage(img engine.Bitmap, source, destination geom.Rect) {
	r.ops = append(r.ops, "image")
	r.images = append(r.images, destination)
}

func (r *fakeRenderer) DrawEntireImage(img engine.Bitmap, position geom.Point) {
	r.ops = append(r.ops, "entire")
	r.entire = append(r.entire, position)
}

func (r *fakeRenderer) DrawBoundingBox(box geom.Rect) {
	r.ops = append(r.ops, "box")
	r.boxes = append(r.boxes, box)
}

type fakeLoader struct {
	sheets map[string]*sprite.Sheet
	images map[string]stubBitmap
	sounds map[string]*stubSound
	fail   map[string]error
}

func (l *fakeLoader) Image(path string) (engine.Bitmap, error) {
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	if bitmap, ok := l.images[path]; ok {
		return bitmap, nil
	}
	return nil, fmt.Errorf("fake loader: no image %q", path)
}

func (l *fakeLoader) Sheet(path string) (*sprite.Sheet, error) {
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	if sheet, ok := l.sheets[path]; ok {
		return sheet, nil
	}
	return nil, fmt.Errorf("fake loader: no sheet %q", path)
}

func (l *fakeLoader) Sound(path string) (engine.SoundPlayer, error) {
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	if sound, ok := l.sounds[path]; ok {
		return sound, nil
	}
	return nil, fmt.Errorf("fake loader: no sound %q", path)
}

func fullCharacterSheet(cfg *config.Config) *sprite.Sheet {
	frames := map[string]sprite.Cell{}
	for _, name := range obj.AnimationFrames(cfg) {
		frames[name] = sprite.Cell{
			Frame:            sprite.SheetRect{X: 0, Y: 0, W: 88, H: 90},
			SpriteSourceSize: sprite.SheetRect{X: 15, Y: 14, W: 88, H: 90},
		}
	}
	return &sprite.Sheet{Frames: frames}
}

func fullTileSheet() *sprite.Sheet {
	return &sprite.Sheet{Frames: map[string]sprite.Cell{
		"13.png": {Frame: sprite.SheetRect{X: 0, Y: 0, W: 128, H: 93}},
		"14.png": {Frame: sprite.SheetRect{X: 128, Y: 0, W: 128, H: 93}},
		"15.png": {Frame: sprite.SheetRect{X: 256, Y: 0, W: 128, H: 93}},
	}}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default tuning: %v", err)
	}
	return cfg
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func testLoader(cfg *config.Config) *fakeLoader {
	return &fakeLoader{
		sheets: map[string]*sprite.Sheet{
			cfg.Assets.CharacterSheet: fullCharacterSheet(cfg),
			cfg.Assets.TileSheet:      fullTileSheet(),
		},
		images: map[string]stubBitmap{
			cfg.Assets.CharacterImage: {w: 1024, h: 1024},
			cfg.Assets.Background:     {w: 600, h: 600},
			cfg.Assets.Stone:          {w: 90, h: 54},
			cfg.Assets.TileImage:      {w: 384, h: 93},
		},
		sounds: map[string]*stubSound{
			cfg.Assets.JumpSound: {},
		},
		fail: map[string]error{},
	}
}

func testGame(t *testing.T) *Game {
	t.Helper()
	cfg := testConfig(t)
	return NewGame(testLoader(cfg), cfg, discardLogger(), 1)
}

func loadedGame(t *testing.T) *Game {
	t.Helper()
	game := testGame(t)
	if err := game.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return game
}

func pressed(t *testing.T, codes ...string) *engine.KeyState {
	t.Helper()
	queue := engine.NewKeyQueue(len(codes) + 1)
	for _, code := range codes {
		queue.Push(engine.KeyEvent{Code: code, Pressed: true})
	}
	state := engine.NewKeyState()
	queue.Drain(state)
	return state
}

func TestInitializeBuildsTheWorld(t *testing.T) {
	game := loadedGame(t)

	if game.walk == nil {
		t.Fatal("expected a loaded session")
	}
	if len(game.walk.obstacles) != 2 {
		t.Fatalf("expected the starting segment's 2 obstacles, got %d", len(game.walk.obstacles))
	}
	// Starting segment sits at offset 0; the platform's right edge sets
	// the timeline.
	if game.walk.timeline != 754 {
		t.Fatalf("expected timeline 754, got %d", game.walk.timeline)
	}
	if got := game.walk.backgrounds[1].BoundingBox().X; got != 600 {
		t.Fatalf("expected second background panel at 600, got %d", got)
	}
}

func TestInitializeTwiceFails(t *testing.T) {
	game := loadedGame(t)

	err := game.Initialize()
	if err == nil {
		t.Fatal("expected re-initialization to fail")
	}
	if !strings.Contains(err.Error(), "already initialized") {
		t.Fatalf("expected already-initialized error, got %v", err)
	}
}

func TestInitializeCollectsEveryFailure(t *testing.T) {
	cfg := testConfig(t)
	loader := testLoader(cfg)
	loader.fail[cfg.Assets.Stone] = fmt.Errorf("fetch %s: connection refused", cfg.Assets.Stone)
	loader.fail[cfg.Assets.JumpSound] = fmt.Errorf("decode %s: bad header", cfg.Assets.JumpSound)

	game := NewGame(loader, cfg, discardLogger(), 1)
	err := game.Initialize()
	if err == nil {
		t.Fatal("expected initialization to fail")
	}
	if !strings.Contains(err.Error(), "connection refused") || !strings.Contains(err.Error(), "bad header") {
		t.Fatalf("expected both failures in one error, got %v", err)
	}
	if game.walk != nil {
		t.Fatal("expected the session to stay unloaded")
	}
}

func TestInitializeRejectsIncompleteCharacterAtlas(t *testing.T) {
	cfg := testConfig(t)
	loader := testLoader(cfg)
	sheet := loader.sheets[cfg.Assets.CharacterSheet]
	delete(sheet.Frames, "Jump (12).png")

	game := NewGame(loader, cfg, discardLogger(), 1)
	err := game.Initialize()
	if err == nil {
		t.Fatal("expected initialization to fail")
	}
	if !strings.Contains(err.Error(), "Jump (12).png") {
		t.Fatalf("expected the missing frame in the error, got %v", err)
	}
}

func TestInitializeRejectsIncompleteTileAtlas(t *testing.T) {
	cfg := testConfig(t)
	loader := testLoader(cfg)
	delete(loader.sheets[cfg.Assets.TileSheet].Frames, "14.png")

	game := NewGame(loader, cfg, discardLogger(), 1)
	if err := game.Initialize(); err == nil || !strings.Contains(err.Error(), "14.png") {
		t.Fatalf("expected the missing tile in the error, got %v", err)
	}
}

func TestUnloadedSessionIsInert(t *testing.T) {
	game := testGame(t)

	game.Update(engine.NewKeyState())

	r := &fakeRenderer{}
	if err := game.Draw(r); err != nil {
		t.Fatalf("expected no draw error, got %v", err)
	}
	if len(r.ops) != 0 {
		t.Fatalf("expected no draw calls, got %v", r.ops)
	}
}

func TestRetuneReachesTheRunningCharacter(t *testing.T) {
	game := loadedGame(t)

	next := testConfig(t)
	next.Physics.RunningSpeed = 9
	game.Retune(next)

	game.Update(pressed(t, "ArrowRight"))
	if got := game.walk.boy.WalkingSpeed(); got != 9 {
		t.Fatalf("expected retuned walking speed 9, got %d", got)
	}
}
