// Package assets resolves the game's content. The sprite atlas
// descriptors are embedded so the binary always knows its frame
// geometry; images and audio are read from an asset directory on disk,
// falling back to embedded copies when one exists.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.json
var embedded embed.FS

// SampleRate is the audio context's sample rate. Every decoded sound is
// resampled to it.
const SampleRate = 44100

// DefaultDir is where the binary looks for content when no directory is
// configured.
const DefaultDir = "assets"

var audioContext *audio.Context

// context creates the process-wide audio context on first use, so that
// importing the package never touches the sound device.
func context() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(SampleRate)
	}
	return audioContext
}

// File returns the named asset. The on-disk copy under dir wins; the
// embedded copy is the fallback.
func File(dir, name string) ([]byte, error) {
	if dir == "" {
		dir = DefaultDir
	}
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}

	b, embedErr := embedded.ReadFile(name)
	if embedErr != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return b, nil
}

// Image decodes the named asset as an *ebiten.Image.
func Image(dir, name string) (*ebiten.Image, error) {
	b, err := File(dir, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Sound decodes the named asset by its extension and wraps it in a
// player on the shared audio context.
func Sound(dir, name string) (*audio.Player, error) {
	b, err := File(dir, name)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(b)
	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", name, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("assets: %s: unsupported audio format %s", name, ext)
	}

	player, err := context().NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: player for %s: %w", name, err)
	}
	return player, nil
}
