package player

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// alsaPlayer routes by extension: aplay for WAV, mpg123 for MP3.
// Any other extension is rejected without spawning a process.
type alsaPlayer struct {
	run Runner
}

func newAlsaPlayer() *alsaPlayer {
	return &alsaPlayer{run: runCommand}
}

func (p *alsaPlayer) Name() string { return BackendAlsaMpg123 }

func (p *alsaPlayer) Play(ctx context.Context, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wrapRunError("aplay", p.run(ctx, "aplay", "--quiet", path))
	case ".mp3":
		return wrapRunError("mpg123", p.run(ctx, "mpg123", "-q", path))
	default:
		return fmt.Errorf("%w: %s backend cannot play %q files",
			ErrUnsupportedFormat, BackendAlsaMpg123, ext)
	}
}
