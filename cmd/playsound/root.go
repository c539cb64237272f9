// Package main provides the CLI entrypoint for playsound.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/playsound"
	"github.com/jmylchreest/playsound/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger

	// dispatcher is the process-wide playback dispatcher
	dispatcher *playsound.Dispatcher
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "playsound [sound...]",
	Short: "Play audio files using native system utilities",
	Long: `playsound plays short audio files by delegating to whichever native
audio utility is available on this system (gst-play-1.0, ffplay,
aplay/mpg123, afplay, or the Windows multimedia API).

Sounds may be local files or http(s) URLs; remote sounds are downloaded
once and cleaned up on exit.

Running playsound with sound arguments and no subcommand plays them.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for PLAYSOUND_* overrides; absence is fine
		_ = godotenv.Load()

		// Setup logging
		setupLogger()

		// Load configuration
		configPath := globalOpts.configPath
		if configPath == "" {
			configPath = os.Getenv("PLAYSOUND_CONFIG")
		}
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backend := os.Getenv("PLAYSOUND_BACKEND"); backend != "" {
			cfg.Playback.Backend = backend
		}

		dispatcher = playsound.New(playsound.Options{
			Logger:          logger,
			DownloadTimeout: cfg.DownloadTimeout(),
			DownloadDir:     cfg.Download.Dir,
			UserAgent:       cfg.Download.UserAgent,
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		// Remove cached downloads
		if dispatcher != nil {
			return dispatcher.Cleanup()
		}
		return nil
	},
	// Default to playing the arguments when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPlay(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/playsound/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func main() {
	Execute()
}
