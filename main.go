// walkabout is a side-scrolling endless runner. The boy runs right,
// slides under stones, and jumps onto floating platforms until
// something knocks him out.
//
// Usage:
//
//	walkabout               - Run the game
//	walkabout check         - Validate tuning and sprite atlases
//
// Global flags:
//
//	--config <path>  - Tuning file (default: configs/walkabout.yaml)
//	--assets <dir>   - Asset directory (default: assets)
//	--debug          - Debug logging, hitboxes, and the FPS overlay
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/walk"
)

var (
	flagConfig string
	flagAssets string
	flagDebug  bool
	flagSeed   int64
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walkabout",
	Short: "Walkabout - a side-scrolling endless runner",
	Long: `Walkabout is a side-scrolling endless runner.

Controls:
  ArrowRight - Run
  ArrowDown  - Slide
  Space      - Jump

Key bindings, physics, and segment layout live in the tuning file and
can be reloaded while the game runs with --watch.

Examples:
  walkabout
  walkabout --debug
  walkabout --config ./my-tuning.yaml --watch
  walkabout --seed 42
  walkabout check`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory holding images, atlases, and audio")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging, hitboxes, and the FPS overlay")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Segment RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")

	rootCmd.AddCommand(checkCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "walkabout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.DefaultPath
		}
		watcher, err = config.Watch(path)
		if err != nil {
			return err
		}
		logger.Info("watching tuning", "path", path)
	}

	session := walk.NewGame(newLoader(flagAssets), cfg, logger, flagSeed)
	if err := session.Initialize(); err != nil {
		return err
	}

	host, err := newHost(session, cfg, watcher, logger)
	if err != nil {
		return err
	}
	defer host.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	return ebiten.RunGame(host)
}
