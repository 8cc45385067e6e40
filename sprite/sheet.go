// Package sprite reads TexturePacker style atlas descriptors. A descriptor
// maps frame names to cells on a single packed image; the simulation looks
// cells up by name and never touches pixel data.
package sprite

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/splitpine/walkabout/geom"
)

// SheetRect is a rectangle as the descriptor encodes it.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect converts to the simulation's rectangle type.
func (s SheetRect) Rect() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.W, Height: s.H}
}

// Cell describes one packed frame. Frame locates the pixels on the sheet
// image; SpriteSourceSize carries the trim offset of the frame within its
// original untrimmed bounds, which positions the frame on screen.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet is a parsed atlas descriptor.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// Parse decodes a descriptor from its JSON bytes.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("sprite: parse sheet: %w", err)
	}
	if sheet.Frames == nil {
		return nil, fmt.Errorf("sprite: parse sheet: no frames entry")
	}
	return &sheet, nil
}

// Cell returns the named frame and whether it exists.
func (s *Sheet) Cell(name string) (Cell, bool) {
	cell, ok := s.Frames[name]
	return cell, ok
}

// FrameNames returns every frame name in the sheet, sorted.
func (s *Sheet) FrameNames() []string {
	names := make([]string, 0, len(s.Frames))
	for name := range s.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
