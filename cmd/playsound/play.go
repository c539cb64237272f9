package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/playsound"
)

var playOpts struct {
	backend    string
	background bool
}

var playCmd = &cobra.Command{
	Use:   "play <sound>...",
	Short: "Play one or more sounds",
	Long: `Play one or more sounds, each a local file or an http(s) URL.

Examples:
  # Play a local file with the auto-selected backend
  playsound play chime.wav

  # Force a specific backend
  playsound play --backend ffplay chime.mp3

  # Play several sounds at once instead of back to back
  playsound play --background a.wav b.wav

  # Play a remote sound (downloaded once, removed on exit)
  playsound play https://example.com/ding.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVar(&playOpts.backend, "backend", "",
		"Backend to use (default: auto-select for this system)")
	playCmd.Flags().BoolVar(&playOpts.background, "background", false,
		"Start all sounds immediately and let them overlap")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	backend := playOpts.backend
	if backend == "" {
		backend = cfg.Playback.Backend
	}

	if !playOpts.background && cfg.Playback.Block {
		for _, sound := range args {
			if err := dispatcher.Play(ctx, sound, backend); err != nil {
				return fmt.Errorf("playing %s: %w", sound, err)
			}
		}
		return nil
	}

	// Overlapping playback: start everything, then wait so the process
	// outlives the players and can sweep the download cache.
	tasks := make(map[string]*playsound.Task, len(args))
	for _, sound := range args {
		task, err := dispatcher.Start(ctx, sound, backend)
		if err != nil {
			return fmt.Errorf("starting %s: %w", sound, err)
		}
		tasks[sound] = task
	}

	var firstErr error
	for sound, task := range tasks {
		if err := task.Wait(); err != nil {
			logger.Warn("playback failed", "sound", sound, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("playing %s: %w", sound, err)
			}
		}
	}
	return firstErr
}
