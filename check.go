package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/walk"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate tuning and sprite atlases",
	Long: `Check loads the tuning file and both sprite atlases, then verifies
that every animation frame and platform tile the simulation can request
exists. Run it after editing tuning or repacking an atlas.

Images and audio are not decoded here; those load at game start.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	loader := newLoader(flagAssets)

	var errs []error
	characterSheet, err := loader.Sheet(cfg.Assets.CharacterSheet)
	if err != nil {
		errs = append(errs, err)
	} else {
		errs = append(errs, walk.ValidateCharacterSheet(characterSheet, cfg))
	}
	tileSheet, err := loader.Sheet(cfg.Assets.TileSheet)
	if err != nil {
		errs = append(errs, err)
	} else {
		errs = append(errs, walk.ValidateTileSheet(tileSheet, cfg))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Info("content is consistent",
		"character_frames", len(characterSheet.FrameNames()),
		"tiles", len(tileSheet.FrameNames()))
	return nil
}
