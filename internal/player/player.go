package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Backend name constants. The set is fixed; which backends are actually
// usable depends on the host OS and the tools installed on it.
const (
	BackendAfplay     = "afplay"
	BackendAlsaMpg123 = "alsa_mpg123"
	BackendFfplay     = "ffplay"
	BackendGstPlay    = "gst_play"
	BackendWinmm      = "winmm"
)

// Errors returned by backend resolution and playback.
var (
	// ErrUnknownBackend indicates an explicit backend name outside the
	// registered set.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrNoBackendAvailable indicates that probing found no usable
	// playback tool on this host.
	ErrNoBackendAvailable = errors.New("no suitable audio backend found")
	// ErrUnsupportedFormat indicates a file extension the selected
	// backend cannot play.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrPlaybackFailed indicates the external process could not be
	// launched or exited with a non-zero status.
	ErrPlaybackFailed = errors.New("playback failed")
)

// Player plays a single audio file by invoking one external process,
// blocking until the process exits.
type Player interface {
	// Name returns the backend identifier.
	Name() string
	// Play plays the file at path. It returns ErrPlaybackFailed (wrapped)
	// when the external process fails, or ErrUnsupportedFormat when the
	// backend rejects the file extension up front.
	Play(ctx context.Context, path string) error
}

// backendNames is the registry order. Kept sorted for stable output.
var backendNames = []string{
	BackendAfplay,
	BackendAlsaMpg123,
	BackendFfplay,
	BackendGstPlay,
	BackendWinmm,
}

// Available returns the names of all registered backends.
func Available() []string {
	names := make([]string, len(backendNames))
	copy(names, backendNames)
	return names
}

// Resolve returns the Player registered under name.
// Unknown names fail with ErrUnknownBackend listing the valid set.
func Resolve(name string) (Player, error) {
	switch name {
	case BackendAfplay:
		return newAfplayPlayer(), nil
	case BackendAlsaMpg123:
		return newAlsaPlayer(), nil
	case BackendFfplay:
		return newFfplayPlayer(), nil
	case BackendGstPlay:
		return newGstPlayPlayer(), nil
	case BackendWinmm:
		return newWinmmPlayer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available backends: %s)",
			ErrUnknownBackend, name, strings.Join(Available(), ", "))
	}
}
