package playsound

import (
	"github.com/jmylchreest/playsound/internal/fetch"
	"github.com/jmylchreest/playsound/internal/player"
)

// Error kinds surfaced by Play and Start. Match with errors.Is.
var (
	// ErrFileNotFound indicates the local sound file does not exist.
	ErrFileNotFound = fetch.ErrFileNotFound
	// ErrDownloadFailed indicates a remote sound could not be fetched.
	ErrDownloadFailed = fetch.ErrDownloadFailed
	// ErrUnknownBackend indicates an explicit backend name outside the
	// registered set; its message lists the valid names.
	ErrUnknownBackend = player.ErrUnknownBackend
	// ErrNoBackendAvailable indicates automatic selection found no
	// usable playback tool on this host.
	ErrNoBackendAvailable = player.ErrNoBackendAvailable
	// ErrUnsupportedFormat indicates a file extension the selected
	// backend cannot play.
	ErrUnsupportedFormat = player.ErrUnsupportedFormat
	// ErrPlaybackFailed indicates the external player process could not
	// be launched or exited with a non-zero status.
	ErrPlaybackFailed = player.ErrPlaybackFailed
)
