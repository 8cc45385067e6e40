// Package config holds every tunable constant of the simulation: window
// geometry, character physics, animation frame counts, hit-box insets,
// platform geometry, segment layout, asset paths, and key bindings. The
// built-in tuning is embedded; a YAML file on disk overrides it field by
// field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/splitpine/walkabout/geom"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "configs/walkabout.yaml"

type Config struct {
	Window    Window    `yaml:"window"`
	Physics   Physics   `yaml:"physics"`
	Animation Animation `yaml:"animation"`
	Hitbox    Hitbox    `yaml:"hitbox"`
	Platform  Platform  `yaml:"platform"`
	Segments  Segments  `yaml:"segments"`
	Assets    Assets    `yaml:"assets"`
	Keys      Keys      `yaml:"keys"`
	Input     Input     `yaml:"input"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Physics struct {
	FloorY           int `yaml:"floor_y"`
	StartingX        int `yaml:"starting_x"`
	RunningSpeed     int `yaml:"running_speed"`
	JumpSpeed        int `yaml:"jump_speed"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
}

type Animation struct {
	TicksPerFrame int `yaml:"ticks_per_frame"`
	IdleFrames    int `yaml:"idle_frames"`
	RunningFrames int `yaml:"running_frames"`
	SlidingFrames int `yaml:"sliding_frames"`
	JumpingFrames int `yaml:"jumping_frames"`
	FallingFrames int `yaml:"falling_frames"`
}

// Hitbox shrinks the character's drawn box into its collision box. The
// x offset moves the left edge right, the y offset moves the top edge
// down and trims the same amount off the height, and the width offset
// trims the width.
type Hitbox struct {
	XOffset     int `yaml:"x_offset"`
	YOffset     int `yaml:"y_offset"`
	WidthOffset int `yaml:"width_offset"`
}

type Platform struct {
	Sprites []string `yaml:"sprites"`
	Boxes   []Box    `yaml:"boxes"`
}

// Box is a rectangle in YAML form, relative to a platform origin.
type Box struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect converts to the simulation's rectangle type.
func (b Box) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

type Segments struct {
	TimelineMinimum int `yaml:"timeline_minimum"`
	ObstacleBuffer  int `yaml:"obstacle_buffer"`
	StoneY          int `yaml:"stone_y"`
	LowPlatformY    int `yaml:"low_platform_y"`
	HighPlatformY   int `yaml:"high_platform_y"`
	FirstOffset     int `yaml:"first_offset"`
	SecondOffset    int `yaml:"second_offset"`
}

type Assets struct {
	CharacterSheet string `yaml:"character_sheet"`
	CharacterImage string `yaml:"character_image"`
	Background     string `yaml:"background"`
	Stone          string `yaml:"stone"`
	TileSheet      string `yaml:"tile_sheet"`
	TileImage      string `yaml:"tile_image"`
	JumpSound      string `yaml:"jump_sound"`
}

// Keys maps actions to KeyboardEvent.code style key names.
type Keys struct {
	Run   string `yaml:"run"`
	Slide string `yaml:"slide"`
	Jump  string `yaml:"jump"`
}

type Input struct {
	QueueCapacity int `yaml:"queue_capacity"`
}

// Default returns the built-in tuning.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default: %w", err)
	}
	return &cfg, nil
}

// Load reads tuning from path, or from DefaultPath when path is empty,
// falling back to the built-in tuning when neither exists. Fields absent
// from the file keep their default values. The result is validated.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run on.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Physics.FloorY <= 0 || c.Physics.FloorY >= c.Window.Height {
		return fmt.Errorf("config: floor_y %d must sit inside the window", c.Physics.FloorY)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity %d must be positive", c.Physics.Gravity)
	}
	if c.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("config: terminal_velocity %d must be positive", c.Physics.TerminalVelocity)
	}
	if c.Animation.TicksPerFrame <= 0 {
		return fmt.Errorf("config: ticks_per_frame %d must be positive", c.Animation.TicksPerFrame)
	}

	frameCounts := []struct {
		name  string
		count int
	}{
		{"idle_frames", c.Animation.IdleFrames},
		{"running_frames", c.Animation.RunningFrames},
		{"sliding_frames", c.Animation.SlidingFrames},
		{"jumping_frames", c.Animation.JumpingFrames},
		{"falling_frames", c.Animation.FallingFrames},
	}
	for _, fc := range frameCounts {
		if fc.count <= 0 {
			return fmt.Errorf("config: %s %d must be positive", fc.name, fc.count)
		}
	}

	if len(c.Platform.Sprites) == 0 {
		return fmt.Errorf("config: platform needs at least one sprite")
	}
	if len(c.Platform.Boxes) == 0 {
		return fmt.Errorf("config: platform needs at least one bounding box")
	}

	keys := []struct {
		name string
		code string
	}{
		{"run", c.Keys.Run},
		{"slide", c.Keys.Slide},
		{"jump", c.Keys.Jump},
	}
	for _, k := range keys {
		if k.code == "" {
			return fmt.Errorf("config: key binding %s must not be empty", k.name)
		}
	}

	if c.Input.QueueCapacity <= 0 {
		return fmt.Errorf("config: queue_capacity %d must be positive", c.Input.QueueCapacity)
	}
	return nil
}

// PlayerHeight is the character's standing height, the gap between the
// floor line and the bottom of the window.
func (c *Config) PlayerHeight() int {
	return c.Window.Height - c.Physics.FloorY
}

// Retune copies the live-tunable groups of next into c. Window, asset,
// and input wiring changes need a restart and are left untouched.
func (c *Config) Retune(next *Config) {
	c.Physics = next.Physics
	c.Animation = next.Animation
	c.Hitbox = next.Hitbox
	c.Platform = next.Platform
	c.Segments = next.Segments
	c.Keys = next.Keys
}
