package player

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// Prober checks whether a playback tool is present by running its
// version query. A toolMissing error means the tool is absent; any
// other error still counts as present (the tool exists, it just
// dislikes the query) and failures surface later at playback time.
type Prober func(ctx context.Context, tool string, versionArg string) error

// linuxCandidates is the Linux probe order. First present tool wins.
var linuxCandidates = []struct {
	tool       string
	versionArg string
	backend    string
}{
	{"gst-play-1.0", "--version", BackendGstPlay},
	{"ffplay", "-version", BackendFfplay},
	{"aplay", "--version", BackendAlsaMpg123},
}

// Selector picks the default backend for the host OS.
type Selector struct {
	logger *slog.Logger
	probe  Prober
	goos   string
}

// NewSelector creates a Selector probing the real host environment.
func NewSelector(logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		logger: logger,
		probe: func(ctx context.Context, tool, versionArg string) error {
			return runCommand(ctx, tool, versionArg)
		},
		goos: runtime.GOOS,
	}
}

// SelectDefault returns the default Player for this host: the
// multimedia API on Windows, afplay on macOS, and the first playback
// tool found on anything else. Exhausting the probe list fails with
// ErrNoBackendAvailable.
func (s *Selector) SelectDefault(ctx context.Context) (Player, error) {
	switch s.goos {
	case "windows":
		return newWinmmPlayer(), nil
	case "darwin":
		return newAfplayPlayer(), nil
	default:
		return s.selectByProbe(ctx)
	}
}

func (s *Selector) selectByProbe(ctx context.Context) (Player, error) {
	s.logger.Debug("probing for an available audio backend")

	for _, c := range linuxCandidates {
		err := s.probe(ctx, c.tool, c.versionArg)
		if err != nil && toolMissing(err) {
			s.logger.Debug("playback tool not found", "tool", c.tool)
			continue
		}
		if err != nil {
			// Present but grumpy about the version query; still usable.
			s.logger.Debug("playback tool probe errored, selecting anyway",
				"tool", c.tool, "error", err)
		}
		s.logger.Debug("selected default backend", "backend", c.backend)
		return Resolve(c.backend)
	}

	return nil, fmt.Errorf("%w: install gstreamer or ffmpeg", ErrNoBackendAvailable)
}

// Usable reports whether the named backend can be expected to work on
// this host, by OS identity for the API-backed backends and by version
// probe for the shell-out ones.
func (s *Selector) Usable(ctx context.Context, name string) bool {
	switch name {
	case BackendWinmm:
		return s.goos == "windows"
	case BackendAfplay:
		return s.goos == "darwin"
	case BackendGstPlay:
		return !toolMissing(s.probe(ctx, "gst-play-1.0", "--version"))
	case BackendFfplay:
		return !toolMissing(s.probe(ctx, "ffplay", "-version"))
	case BackendAlsaMpg123:
		return !toolMissing(s.probe(ctx, "aplay", "--version"))
	default:
		return false
	}
}
