package walk

import (
	"errors"
	"fmt"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/obj"
	"github.com/splitpine/walkabout/sprite"
)

// ValidateCharacterSheet checks that the descriptor holds every frame
// the character state machine can request under cfg. Missing frames are
// collected into one error.
func ValidateCharacterSheet(sheet *sprite.Sheet, cfg *config.Config) error {
	var errs []error
	for _, name := range obj.AnimationFrames(cfg) {
		if _, ok := sheet.Cell(name); !ok {
			errs = append(errs, fmt.Errorf("walk: character sheet missing frame %q", name))
		}
	}
	return errors.Join(errs...)
}

// ValidateTileSheet checks that the descriptor holds every platform
// sprite the generator places.
func ValidateTileSheet(sheet *sprite.Sheet, cfg *config.Config) error {
	var errs []error
	for _, name := range cfg.Platform.Sprites {
		if _, ok := sheet.Cell(name); !ok {
			errs = append(errs, fmt.Errorf("walk: tile sheet missing sprite %q", name))
		}
	}
	return errors.Join(errs...)
}
