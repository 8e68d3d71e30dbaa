package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/secret-kiss/internal/audio"
	"github.com/vovakirdan/secret-kiss/internal/config"
	"github.com/vovakirdan/secret-kiss/internal/core"
	"github.com/vovakirdan/secret-kiss/internal/games/kiss"
	"github.com/vovakirdan/secret-kiss/internal/platform/tui"
	"github.com/vovakirdan/secret-kiss/internal/storage"
)

var (
	flagConfig     string
	flagPreset     string
	flagMute       bool
	flagAudio      bool
	flagVolume     int
	flagSampleRate int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in the hallway.

Controls:
  Mouse button   - Hold to kiss, release to stop
  Space/K        - Toggle kissing (terminals do not report key release)
  R/Enter/Click  - Try again (after getting caught)
  M              - Mute
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Presets:
  standard - One second of warning before the principal turns
  classic  - Half a second of warning

Examples:
  secretkiss play
  secretkiss play --preset classic
  secretkiss play --mute
  secretkiss play --config ./my-kiss.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Timing preset: standard, classic")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().BoolVar(&flagAudio, "audio", env.Audio, "Enable audio output")
	playCmd.Flags().IntVar(&flagVolume, "volume", env.Volume, "Master volume (0-100)")
	playCmd.Flags().IntVar(&flagSampleRate, "sample-rate", env.SampleRate, "Audio sample rate")
}

// loadKissConfig loads the tuning file and applies the preset.
func loadKissConfig() (config.KissConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.KissConfig{}, "", err
	}
	cfg, err := config.LoadKiss(flagConfig)
	if err != nil {
		return config.KissConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// newRand returns the session's random source. A zero seed means time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runPlay(_ *cobra.Command, _ []string) {
	kissCfg, preset, err := loadKissConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := kiss.Options{
		Config: &kissCfg,
		Rand:   newRand(flagSeed),
		Log:    logger,
		Audio:  kiss.NopAudio{},
	}
	uiOpts := tui.Options{
		Log:    logger,
		Preset: string(preset),
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score database", "err", err)
		// Continue without storage - the best score lives in memory
	} else {
		defer store.Close()
		opts.Store = store
		uiOpts.Store = store
	}

	sound := audio.NewSoundManager(audio.NewAudioConfig(flagAudio, flagVolume, flagSampleRate))
	if err := sound.Initialize(); err != nil {
		logger.Warn("playing without sound", "err", err)
	} else if flagAudio {
		defer sound.Close()
		sound.SetMuted(flagMute)
		opts.Audio = sound
		uiOpts.Muter = sound
	}

	game := kiss.New(opts)
	logger.Info("starting", "preset", preset, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, cfg, uiOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
